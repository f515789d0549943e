package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func (a *API) UserLogout(c *gin.Context) {
	sslEnabled := viper.GetBool("host.ssl.enabled")

	c.SetCookie("auth_token", "", -1, "/", "", sslEnabled, true)
	c.SetCookie("logged_in", "", -1, "/", "", sslEnabled, false)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
