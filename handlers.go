package siteconf

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleSettings serves the record; ?format=yaml|toml switches the encoding.
func (a *App) handleSettings(c echo.Context) error {
	f := FormatJSON
	if q := c.QueryParam("format"); q != "" {
		parsed, err := ParseFormat(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		f = parsed
	}
	return RenderSettings(c, a.Settings, f)
}

func (a *App) handleEditLink(c echo.Context) error {
	filePath := c.QueryParam("path")
	if filePath == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}
	link, err := a.Settings.EditLink(filePath)
	if err != nil {
		if errors.Is(err, ErrEditDisabled) {
			return echo.NewHTTPError(http.StatusNotFound, "edit link disabled")
		}
		return err
	}
	return c.JSON(http.StatusOK, link)
}

func (a *App) handleValidate(c echo.Context) error {
	err := Validate(a.Settings)
	if err == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"valid": true})
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"valid":  false,
			"fields": ve.Fields,
		})
	}
	return err
}

// handleHead renders the site-level <head> block, for checking meta output.
func (a *App) handleHead(c echo.Context) error {
	return Render(c, Head(a.Settings, SiteMeta(a.Settings)))
}

// handleRobots generates robots.txt from the website URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %ssitemap-index.xml\n", BuildURL(a.Settings.Website))
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"error": msg})
}
