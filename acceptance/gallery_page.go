//go:build acceptance
// +build acceptance

package acceptance

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// GalleryPage wraps the gallery page with helpers for the tests.
type GalleryPage struct {
	Page playwright.Page
	t    *testing.T
}

// OpenGalleryPage navigates to the gallery and waits for the interaction stream.
func OpenGalleryPage(t *testing.T, browser playwright.Browser, galleryURL string) *GalleryPage {
	t.Helper()

	page, err := browser.NewPage()
	require.NoError(t, err)
	t.Cleanup(func() { page.Close() })

	_, err = page.Goto(galleryURL)
	require.NoError(t, err)

	err = page.Locator("#interaction-list").WaitFor()
	require.NoError(t, err)

	return &GalleryPage{Page: page, t: t}
}

// Instance locates the wrapper of a gallery instance.
func (gp *GalleryPage) Instance(name string) playwright.Locator {
	return gp.Page.Locator(fmt.Sprintf("[data-instance=%q]", name))
}

// Option locates a survey option button.
func (gp *GalleryPage) Option(id string) playwright.Locator {
	return gp.Instance("survey").Locator(fmt.Sprintf("[data-option-id=%q]", id))
}

// WaitForCallback waits until the interaction list shows n entries for callback.
func (gp *GalleryPage) WaitForCallback(callback string, n int) {
	gp.t.Helper()

	_, err := gp.Page.WaitForFunction(
		`([callback, n]) => document.querySelectorAll('#interaction-list > li[data-callback="' + callback + '"]').length >= n`,
		[]any{callback, n},
		playwright.PageWaitForFunctionOptions{Timeout: playwright.Float(5000)},
	)
	require.NoError(gp.t, err, "waiting for %d %s interactions", n, callback)
}

// CallbackCount returns how many entries the interaction list shows for callback.
func (gp *GalleryPage) CallbackCount(callback string) int {
	gp.t.Helper()

	count, err := gp.Page.Locator(fmt.Sprintf("#interaction-list > li[data-callback=%q]", callback)).Count()
	require.NoError(gp.t, err)
	return count
}
