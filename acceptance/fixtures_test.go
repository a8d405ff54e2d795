//go:build acceptance
// +build acceptance

package acceptance

import "testing"

// WithGallery starts the test app and a browser on the gallery page.
func WithGallery(t *testing.T, fn func(t *testing.T, app *TestApp, gallery *GalleryPage)) {
	t.Helper()

	app := NewTestApp(t)
	t.Cleanup(app.Close)

	pw := NewPlaywrightFixture(t)
	t.Cleanup(pw.Close)

	fn(t, app, OpenGalleryPage(t, pw.Browser, app.GalleryURL))
}
