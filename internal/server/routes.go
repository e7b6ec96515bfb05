package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faceset/faceset/internal/sample"
)

type startForm struct {
	Count int `json:"count" binding:"required"`
}

func registerRoutes(router *gin.Engine, co *sample.Coordinator) {
	v1 := router.Group("/api/v1")

	v1.GET("/status", func(c *gin.Context) {
		status := co.Status()

		c.JSON(http.StatusOK, gin.H{
			"state":     status.State.String(),
			"active":    status.Active,
			"collected": status.Collected,
			"target":    status.Target,
		})
	})

	v1.POST("/sample/start", func(c *gin.Context) {
		var form startForm

		if err := c.BindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := co.Start(form.Count); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"target": form.Count})
	})

	v1.POST("/sample/stop", func(c *gin.Context) {
		co.Stop()
		c.JSON(http.StatusOK, gin.H{"active": false})
	})

	v1.POST("/sample/reset", func(c *gin.Context) {
		co.Reset()
		c.JSON(http.StatusOK, gin.H{"collected": 0})
	})

	v1.GET("/ws", func(c *gin.Context) {
		wsEvents(c.Writer, c.Request)
	})
}
