package forms

import (
	"github.com/buckmanting/todo-tech-test/pkg/rest/response"
	"github.com/gin-gonic/gin"
)

type Former interface {
	ParseAndValidate(c *gin.Context) (Former, response.Error)
	ConvertToMap() map[string]interface{}
}
