package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusBannerShowsAndExpires(t *testing.T) {
	flash := NewScheduler()
	t.Cleanup(flash.Stop)

	banner := NewStatusBanner("contact-success", flash)
	assert.False(t, banner.Visible())

	banner.Show("Thank you for your message! We will get back to you within 24 hours.")
	assert.True(t, banner.Visible())

	assert.Eventually(t, func() bool { return !banner.Visible() },
		7*time.Second, 50*time.Millisecond)
}

func TestStatusBannerResubmitReplacesMessage(t *testing.T) {
	flash := NewScheduler()
	t.Cleanup(flash.Stop)

	banner := NewStatusBanner("login-success", flash)
	banner.Show("Welcome back, jane! Login successful.")
	banner.Show("Welcome back, joe! Login successful.")

	assert.Equal(t, "Welcome back, joe! Login successful.", banner.Message())
}
