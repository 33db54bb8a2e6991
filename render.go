package siteconf

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response, as the
// /head preview does.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus is Render with an explicit status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// RenderSettings writes s encoded in format f.
func RenderSettings(c echo.Context, s Settings, f Format) error {
	data, err := Marshal(s, f)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, f.ContentType(), data)
}
