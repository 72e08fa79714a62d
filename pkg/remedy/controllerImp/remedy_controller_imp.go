package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"herbaverse/entities"
	"herbaverse/pkg/remedy/repository"
)

type RemedyCtrl struct {
	repo     repository.RemedyRepository
	allow    map[string]bool
	maxBytes int
}

func New(repo repository.RemedyRepository) *RemedyCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(os.Getenv("REMEDY_ALLOWED_DOMAINS"), ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	mb := 1500000
	if v := os.Getenv("REMEDY_MAX_BYTES_PER_PAGE"); v != "" {
		fmt.Sscanf(v, "%d", &mb)
	}
	return &RemedyCtrl{repo: repo, allow: allow, maxBytes: mb}
}

type createReq struct {
	PlantID     string `json:"plant_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Preparation string `json:"preparation"`
	SourceURL   string `json:"source_url"`
}

func (h *RemedyCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "title is required"})
	}
	if strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "description is required"})
	}
	rem := &entities.Remedy{
		UserID:      uid,
		PlantID:     strings.TrimSpace(req.PlantID),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Preparation: req.Preparation,
		SourceURL:   strings.TrimSpace(req.SourceURL),
	}
	if err := h.repo.Create(rem); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rem)
}

func (h *RemedyCtrl) List(c echo.Context) error {
	rows, err := h.repo.List(c.QueryParam("plant_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *RemedyCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	rem, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "not found"})
	}
	return c.JSON(http.StatusOK, rem)
}

type ingestReq struct {
	PlantID string `json:"plant_id"`
	URL     string `json:"url"`
}

// IngestURL drafts a remedy from an external page: fetch, extract title
// and paragraph text, store unapproved for review.
func (h *RemedyCtrl) IngestURL(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error()})
	}
	u, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "valid http(s) url is required"})
	}
	if len(h.allow) > 0 && !h.allow[strings.ToLower(u.Hostname())] {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "domain not allowed: " + u.Hostname()})
	}

	text, title, err := fetchMainText(u.String(), h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "fetch: " + err.Error()})
	}
	if strings.TrimSpace(text) == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "no readable content"})
	}
	if title == "" {
		title = u.Hostname()
	}

	rem := &entities.Remedy{
		UserID:      uid,
		PlantID:     strings.TrimSpace(req.PlantID),
		Title:       title,
		Description: text,
		SourceURL:   u.String(),
	}
	if err := h.repo.Create(rem); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rem)
}

func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if strings.Contains(ct, "text/plain") {
		text := string(b)
		line := strings.SplitN(strings.TrimSpace(text), "\n", 2)[0]
		if len(line) > 120 {
			line = line[:120]
		}
		return text, line, nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection // fallback
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n"), title, nil
}
