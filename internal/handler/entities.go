package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub/internal/model"
	"internhub/internal/portal"
)

func (h *Handler) ListColleges(c *gin.Context) {
	out, err := h.portalFor(c).ListColleges(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateCollege(c *gin.Context) {
	var in model.College
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).CreateCollege(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateCollege(c *gin.Context) {
	var in model.College
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).UpdateCollege(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteCollege(c *gin.Context) {
	if err := h.portalFor(c).DeleteCollege(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListInterns(c *gin.Context) {
	out, err := h.portalFor(c).ListInterns(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetIntern(c *gin.Context) {
	out, err := h.portalFor(c).GetIntern(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateIntern(c *gin.Context) {
	var in model.Intern
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).CreateIntern(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateIntern(c *gin.Context) {
	var in model.Intern
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).UpdateIntern(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteIntern(c *gin.Context) {
	if err := h.portalFor(c).DeleteIntern(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Roster is the merged candidate and intern list.
func (h *Handler) Roster(c *gin.Context) {
	out, err := h.portalFor(c).Roster(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// AllDocuments lists every intern with their documents. Interns whose
// documents could not be fetched come back with an empty list.
func (h *Handler) AllDocuments(c *gin.Context) {
	ctx := c.Request.Context()
	svc := h.portalFor(c)
	interns, err := svc.ListInterns(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	out, err := svc.AllDocuments(ctx, interns)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) InternDocuments(c *gin.Context) {
	out, err := h.portalFor(c).DocumentsForIntern(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) UploadDocument(c *gin.Context) {
	var meta portal.DocumentUpload
	if err := c.ShouldBind(&meta); err != nil {
		badRequest(c, err)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	out, err := h.portalFor(c).UploadDocument(c.Request.Context(), meta, fh.Filename, f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) VerifyDocument(c *gin.Context) {
	out, err := h.portalFor(c).VerifyDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) RejectDocument(c *gin.Context) {
	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).RejectDocument(c.Request.Context(), c.Param("id"), body.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListOffers(c *gin.Context) {
	out, err := h.portalFor(c).ListOffers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateOffer(c *gin.Context) {
	var in model.Offer
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).CreateOffer(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) OfferAction(c *gin.Context) {
	action := portal.OfferAction(c.Param("action"))
	if !action.Valid() {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown offer action"})
		return
	}
	out, err := h.portalFor(c).ApplyOfferAction(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// OfferPreview serves the letter HTML as the backend rendered it.
func (h *Handler) OfferPreview(c *gin.Context) {
	html, err := h.portalFor(c).PreviewOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
