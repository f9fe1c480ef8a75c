package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/interfaces/http/response"
	"paletto-cards.backend/internal/usecases"
)

type ExportHandler struct {
	usecase *usecases.MemberUsecase
}

func NewExportHandler(usecase *usecases.MemberUsecase) *ExportHandler {
	return &ExportHandler{usecase: usecase}
}

// ExportVCard renders a member as a downloadable vCard 3.0 document.
// GET /api/members/:id/vcard
func (h *ExportHandler) ExportVCard(c *gin.Context) {
	id := c.Param("id")
	member, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	card := buildVCard(member)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.vcf"`, id))
	c.Data(http.StatusOK, "text/vcard; charset=utf-8", []byte(card))
}

// buildVCard emits a vCard 3.0 (RFC 2426) document. CRLF line endings
// and escaped separators are required by the format.
func buildVCard(m *entities.Member) string {
	var b strings.Builder
	writeLine := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(key)
		b.WriteString(":")
		b.WriteString(escapeVCard(value))
		b.WriteString("\r\n")
	}

	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	writeLine("FN", m.Name)
	b.WriteString(fmt.Sprintf("N:%s;;;;\r\n", escapeVCard(m.Name)))
	if m.NameEn != "" {
		writeLine("NICKNAME", m.NameEn)
	}
	writeLine("TITLE", m.Role)
	writeLine("ORG", m.Department)
	if m.Email != "" {
		b.WriteString("EMAIL;TYPE=INTERNET:")
		b.WriteString(escapeVCard(m.Email))
		b.WriteString("\r\n")
	}
	if m.Phone != "" {
		b.WriteString("TEL;TYPE=CELL:")
		b.WriteString(escapeVCard(m.Phone))
		b.WriteString("\r\n")
	}
	writeLine("NOTE", m.Bio)
	for _, platform := range entities.SocialPlatforms {
		if url := m.Social[platform]; url != "" {
			b.WriteString(fmt.Sprintf("URL;TYPE=%s:%s\r\n", strings.ToUpper(string(platform)), escapeVCard(url)))
		}
	}
	b.WriteString("END:VCARD\r\n")
	return b.String()
}

func escapeVCard(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}
