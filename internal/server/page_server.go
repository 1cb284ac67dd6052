package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/logx"
)

const (
	pageWidget  = "widget.html"
	pageExpired = "expired.html"

	messageExpired = "This feedback form has expired. Please open the link again."
	messageFailure = "Something went wrong. Please try again later."
)

//go:embed templates/*.html
var templateFS embed.FS

// PageServer HTML страницы виджета. Работает без JavaScript: каждое действие
// это POST формы и редирект обратно на страницу сессии.
type PageServer struct {
	registry  sessionRegistry
	templates *template.Template
}

type widgetPage struct {
	View widget.View
	// Action префикс адресов форм сессии.
	Action     string
	NavigateTo string
	Refresh    bool
}

type messagePage struct {
	Title   string
	Message string
}

func NewPageServer(registry sessionRegistry) (PageServer, error) {
	funcMap := template.FuncMap{
		"seq": seq,
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return PageServer{}, fmt.Errorf("template.ParseFS: %w", err)
	}

	return PageServer{
		registry:  registry,
		templates: templates,
	}, nil
}

// getFeedback входная ссылка. Невалидная ссылка показывает ошибку без
// создания сессии.
func (s PageServer) getFeedback(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	link, err := widget.ParseLink(r.URL.Query())
	if err != nil {
		logger(ctx).Warn("widget.ParseLink", logx.Error(err))

		return s.render(w, http.StatusBadRequest, pageWidget, widgetPage{View: widget.InvalidLinkView()})
	}

	session := s.registry.Create(ctx, link)

	http.Redirect(w, r, sessionPath(session.ID()), http.StatusSeeOther)

	return nil
}

func (s PageServer) getFeedbackSession(w http.ResponseWriter, r *http.Request) error {
	session, ok := s.pageSession(r)
	if !ok {
		return s.renderExpired(w)
	}

	view := session.View()
	navigateTo, _ := session.TakeNavigation()

	return s.render(w, http.StatusOK, pageWidget, widgetPage{
		View:       view,
		Action:     sessionPath(view.SessionID),
		NavigateTo: navigateTo,
		Refresh:    view.ShowCountdown() || view.Submitting,
	})
}

func (s PageServer) postFeedbackRating(w http.ResponseWriter, r *http.Request) error {
	session, ok := s.pageSession(r)
	if !ok {
		return s.renderExpired(w)
	}

	rating, err := value.ParseRatingString(r.PostFormValue("rating"))
	if err == nil {
		err = session.SelectRating(r.Context(), rating.Int())
	}

	return s.afterAction(w, r, session, err)
}

func (s PageServer) postFeedbackComment(w http.ResponseWriter, r *http.Request) error {
	session, ok := s.pageSession(r)
	if !ok {
		return s.renderExpired(w)
	}

	err := session.SetComment(r.PostFormValue("comment"))
	if err == nil {
		err = session.Submit(r.Context())
	}

	return s.afterAction(w, r, session, err)
}

func (s PageServer) postFeedbackDismiss(w http.ResponseWriter, r *http.Request) error {
	session, ok := s.pageSession(r)
	if !ok {
		return s.renderExpired(w)
	}

	return s.afterAction(w, r, session, session.Dismiss())
}

// afterAction возвращает браузер на страницу сессии. Отклонённое действие
// не меняет состояние, поэтому страница просто отрисуется заново.
func (s PageServer) afterAction(w http.ResponseWriter, r *http.Request, session *widget.Session, err error) error {
	if domain.IsKind(err, domain.KindNotFound) {
		return s.renderExpired(w)
	}

	if err != nil {
		logger(r.Context()).Warn("widget action rejected", logx.Error(err))
	}

	http.Redirect(w, r, sessionPath(session.ID()), http.StatusSeeOther)

	return nil
}

func (s PageServer) pageSession(r *http.Request) (*widget.Session, bool) {
	id, err := value.ParseSessionID(chi.URLParam(r, "sessionId"))
	if err != nil {
		return nil, false
	}

	session, err := s.registry.Get(id)
	if err != nil {
		logger(r.Context()).Info("widget session not found", slog.String(logx.FieldSessionID, id.String()))

		return nil, false
	}

	return session, true
}

func (s PageServer) renderExpired(w http.ResponseWriter) error {
	return s.render(w, http.StatusNotFound, pageExpired, messagePage{
		Title:   "Feedback",
		Message: messageExpired,
	})
}

// render сначала пишет шаблон в буфер, чтобы ошибка шаблона не оставила
// полстраницы с кодом 200.
func (s PageServer) render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer

	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("templates.ExecuteTemplate(%s): %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	// Заголовки уже ушли, клиенту ошибку не показать.
	if _, err := buf.WriteTo(w); err != nil {
		slog.Default().Warn("buf.WriteTo", logx.Error(err))
	}

	return nil
}

// renderFailure страница для ошибок, которые не удалось показать иначе.
func (s PageServer) renderFailure(w http.ResponseWriter) {
	err := s.render(w, http.StatusInternalServerError, pageExpired, messagePage{
		Title:   "Feedback",
		Message: messageFailure,
	})
	if err != nil {
		http.Error(w, messageFailure, http.StatusInternalServerError)
	}
}

func sessionPath(id value.SessionID) string {
	return "/feedback/" + id.String()
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)

	for i := from; i <= to; i++ {
		out = append(out, i)
	}

	return out
}
