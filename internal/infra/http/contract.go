package server

import (
	"github.com/gin-gonic/gin"
)

type CatalogHandler interface {
	Search(ctx *gin.Context)
}

type SongsHandler interface {
	List(ctx *gin.Context)
	Add(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type TodosHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	AttachmentUploadURL(ctx *gin.Context)
}
