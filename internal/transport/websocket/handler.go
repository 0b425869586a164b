package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
	"github.com/pawpals/storefront/internal/events"
	"github.com/pawpals/storefront/internal/service"
	"github.com/pawpals/storefront/internal/ui"
)

// Handler streams cart events to connected storefront pages and drives the
// per-connection view state (product overlay, quantity stepper, nav panel)
// from the actions the page sends back.
type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
	Carts    service.CartService

	// CartID resolves the caller's cart identity from the upgrade request.
	CartID func(r *http.Request) string
}

type Message struct {
	EventType string      `json:"event-type"`
	Data      interface{} `json:"data"`
}

// Action is a view-state command sent by a connected page.
type Action struct {
	Action    string             `json:"action"`
	Card      domain.ProductCard `json:"card,omitempty"`
	Key       string             `json:"key,omitempty"`
	Value     int                `json:"value,omitempty"`
	OnContent bool               `json:"on_content,omitempty"`
}

// ViewState is the snapshot pushed back after every applied action.
type ViewState struct {
	ModalOpen    bool   `json:"modal_open"`
	ScrollLocked bool   `json:"scroll_locked"`
	Quantity     int    `json:"quantity"`
	AddLabel     string `json:"add_label"`
	NavActive    bool   `json:"nav_active"`
}

func NewHandler(
	log hclog.Logger,
	eventBus *events.EventBus[any],
	carts service.CartService,
	cartID func(r *http.Request) string) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Implement origin checks if necessary
				return true
			},
		},
		Log:      log,
		EventBus: eventBus,
		Carts:    carts,
		CartID:   cartID,
	}
}

// session is the view state of one connection. It is touched only by the
// connection's action pump, so it needs no locking of its own.
type session struct {
	modal   *ui.ProductModal
	nav     *ui.NavMenu
	flash   *ui.Scheduler
	buttons map[string]*ui.AddButton
	carts   service.CartService
	cartID  string
	log     hclog.Logger
}

func (h *Handler) newSession(cartID string) *session {
	flash := ui.NewScheduler()
	return &session{
		modal:   ui.NewProductModal(h.Carts, flash, h.Log),
		nav:     ui.NewNavMenu(),
		flash:   flash,
		buttons: make(map[string]*ui.AddButton),
		carts:   h.Carts,
		cartID:  cartID,
		log:     h.Log,
	}
}

func (s *session) apply(ctx context.Context, a Action) error {
	switch a.Action {
	case "modal_open":
		s.modal.Open(a.Card)
	case "modal_close":
		s.modal.Close()
	case "backdrop_click":
		s.modal.HandleBackdropClick(a.OnContent)
	case "escape":
		s.modal.HandleEscape()
	case "step_up":
		s.modal.StepUp()
	case "step_down":
		s.modal.StepDown()
	case "set_quantity":
		s.modal.SetQuantity(a.Value)
	case "modal_add_to_cart":
		return s.modal.AddToCart(ctx, s.cartID)
	case "inline_add":
		return s.button(a.Key).Click(ctx, s.cartID, a.Card)
	case "nav_toggle":
		s.nav.Toggle()
	case "nav_link":
		s.nav.LinkClicked()
	default:
		return fmt.Errorf("unknown action %q", a.Action)
	}
	return nil
}

// button returns the inline add control for a card, creating it on first use.
func (s *session) button(key string) *ui.AddButton {
	if b, ok := s.buttons[key]; ok {
		return b
	}
	b := ui.NewAddButton(key, s.carts, s.flash, s.log)
	s.buttons[key] = b
	return b
}

func (s *session) snapshot() ViewState {
	return ViewState{
		ModalOpen:    s.modal.IsOpen(),
		ScrollLocked: s.modal.ScrollLocked(),
		Quantity:     s.modal.Quantity(),
		AddLabel:     s.modal.AddLabel(),
		NavActive:    s.nav.Active(),
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	sess := h.newSession(h.CartID(r))
	defer sess.flash.Stop()

	// Subscribe to events
	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	// Create a done channel to signal when the connection is closed
	done := make(chan struct{})

	// updates carries view-state snapshots from the action pump; all writes
	// to the connection happen on this goroutine
	updates := make(chan ViewState, 8)
	go h.actionPump(conn, sess, updates, done)

	// Listen for events and send them to the WebSocket client
	for {
		select {
		case event, ok := <-subscriber:
			if !ok {
				// the bus shut down underneath us
				h.Log.Info("Event bus closed, dropping WebSocket connection")
				return
			}

			var message Message
			switch e := event.(type) {
			case events.CartUpdated:
				message = Message{
					EventType: "cart_updated",
					Data:      e,
				}
			case events.ItemAdded:
				message = Message{
					EventType: "item_added",
					Data:      e,
				}
			case events.OrderPlaced:
				message = Message{
					EventType: "order_placed",
					Data:      e,
				}
			default:
				h.Log.Warn("Unknown event type", "event", e)
				continue
			}

			if err := h.write(conn, message); err != nil {
				// Connection might be closed, exit the loop
				return
			}
		case state := <-updates:
			if err := h.write(conn, Message{EventType: "view_state", Data: state}); err != nil {
				return
			}
		case <-done:
			// The connection has been closed
			h.Log.Info("WebSocket connection closed by the client")
			return
		}
	}
}

func (h *Handler) write(conn *websocket.Conn, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		h.Log.Error("Error marshalling message", "error", err)
		return nil
	}

	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		h.Log.Error("Error writing message to WebSocket", "error", err)
		return err
	}
	return nil
}

// actionPump reads view-state actions from the client, applies them to the
// session, and hands the resulting snapshot to the write loop.
func (h *Handler) actionPump(conn *websocket.Conn, sess *session, updates chan<- ViewState, done chan struct{}) {
	defer close(done)
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.Error("Error reading message", "error", err)
			}
			break
		}

		var action Action
		if err := json.Unmarshal(payload, &action); err != nil {
			h.Log.Warn("Discarding unreadable action", "error", err)
			continue
		}

		if err := sess.apply(context.Background(), action); err != nil {
			h.Log.Error("Action failed", "action", action.Action, "error", err)
			continue
		}

		select {
		case updates <- sess.snapshot():
		default:
		}
	}
}
