package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/teashop-server/internal/api/http/apierror"
)

//go:embed openapi.json
var openAPIDocument []byte

const welcomeMessage = "WELCOME TO THE TEA SHOP!"

func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, messageResponse{Message: welcomeMessage})
}

// OpenAPI serves the API description.
func OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, apierror.Response{Detail: "Not Found"})
}
