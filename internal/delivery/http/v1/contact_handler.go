package v1

import (
	"errors"
	"net/http"

	"portfolio-contact-api/internal/delivery/http/response"
	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// MaxContactBodyBytes caps a submission body. Real form posts are a few KB.
const MaxContactBodyBytes = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers POST /contact on every given group (public, no auth required)
func NewContactHandler(contactUC domain.ContactUsecase, groups ...*gin.RouterGroup) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	for _, g := range groups {
		g.POST("/contact", handler.SubmitContact)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact submission, emails the site owner and sends the visitor an acknowledgement. Email delivery problems are logged and never change the response.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxContactBodyBytes)

	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	res, err := h.contactUC.Submit(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, res.Message)
}
