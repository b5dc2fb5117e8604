package handler

import "github.com/labstack/echo/v4"

// authUser reads the identity placed in context by the auth middleware.
func authUser(c echo.Context) (id, email, role string) {
	id, _ = c.Get("user_id").(string)
	email, _ = c.Get("email").(string)
	role, _ = c.Get("role").(string)
	return id, email, role
}
