package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zehraz1/portfolio/internal/contact"
	"github.com/zehraz1/portfolio/internal/content"
	"github.com/zehraz1/portfolio/internal/counter"
	"github.com/zehraz1/portfolio/internal/layout"
	"github.com/zehraz1/portfolio/internal/log"
	"github.com/zehraz1/portfolio/internal/tabs"
	"github.com/zehraz1/portfolio/internal/wrap"
)

func (s *Server) index(c *gin.Context) {
	p := s.content.Current()
	var total int64
	if s.downloads != nil {
		n, err := s.downloads.Count(c.Request.Context())
		if err != nil {
			log.ErrorErr(log.CatWeb, "reading download count failed", err)
		}
		total = n
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"listing":   p.Listing,
		"links":     p.Links,
		"email":     p.ContactEmail,
		"downloads": counter.FormatCompact(total),
	})
}

func (s *Server) download(c *gin.Context) {
	if s.downloads != nil {
		if _, err := s.downloads.Download(c.Request.Context()); err != nil {
			log.ErrorErr(log.CatWeb, "recording download failed", err)
		}
	}
	c.Redirect(http.StatusSeeOther, "/editor")
}

type fileLink struct {
	tabs.File
	Icon   string
	Active bool
	Href   string
}

type tabLink struct {
	tabs.Tab
	Icon      string
	SelectURL string
	CloseURL  string
}

type codeLine struct {
	Number string
	Text   string
}

func (s *Server) registry(c *gin.Context) (*tabs.Registry, bool) {
	reg, err := s.content.Current().Registry()
	if err != nil {
		log.ErrorErr(log.CatWeb, "building registry failed", err)
		c.String(http.StatusInternalServerError, "content unavailable")
		return nil, false
	}
	return reg, true
}

func (s *Server) editor(c *gin.Context) {
	reg, ok := s.registry(c)
	if !ok {
		return
	}
	st := parseState(c, reg.Default())
	mgr := tabs.NewManager(reg, tabs.WithState(st.State))
	st.State = mgr.State()

	active := mgr.Active()
	budget := layout.Budget(st.measurer())
	lines := wrap.Lines(active.Content, budget)
	gutter := wrap.Gutter(len(lines))
	code := make([]codeLine, len(lines))
	for i, line := range lines {
		code[i] = codeLine{Number: gutter[i], Text: line}
	}

	files := reg.Files()
	explorer := make([]fileLink, len(files))
	for i, f := range files {
		explorer[i] = fileLink{File: f, Icon: content.Icon(f.Label), Active: f.ID == st.Active, Href: st.link("/editor/open/" + f.ID)}
	}
	strip := mgr.Tabs()
	tabLinks := make([]tabLink, len(strip))
	for i, t := range strip {
		tabLinks[i] = tabLink{
			Tab:       t,
			Icon:      content.Icon(t.Label),
			SelectURL: st.link("/editor/select/" + t.ID),
			CloseURL:  st.link("/editor/close/" + t.ID),
		}
	}

	c.HTML(http.StatusOK, "editor.html", gin.H{
		"title":      s.content.Current().Editor.Title,
		"sidebar":    st.SidebarOpen,
		"files":      explorer,
		"tabs":       tabLinks,
		"active":     active,
		"lines":      code,
		"budget":     budget,
		"measured":   st.Chars == 0,
		"sidebarURL": st.link("/sidebar"),
	})
}

func openEvent(id string) tabs.Event   { return tabs.OpenFile{ID: id} }
func closeEvent(id string) tabs.Event  { return tabs.CloseTab{ID: id} }
func selectEvent(id string) tabs.Event { return tabs.SelectTab{ID: id} }

// fileAction applies one tab event and redirects back to the editor with
// the new state. Unknown ids are a 404 rather than a silent no-op.
func (s *Server) fileAction(event func(id string) tabs.Event) gin.HandlerFunc {
	return func(c *gin.Context) {
		reg, ok := s.registry(c)
		if !ok {
			return
		}
		st := parseState(c, reg.Default())
		mgr := tabs.NewManager(reg, tabs.WithState(st.State), tabs.WithStrict())

		if err := mgr.Apply(event(c.Param("id"))); err != nil {
			var unknown *tabs.UnknownFileError
			if errors.As(err, &unknown) {
				c.String(http.StatusNotFound, err.Error())
				return
			}
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		st.State = mgr.State()
		c.Redirect(http.StatusSeeOther, st.link("/editor"))
	}
}

func (s *Server) toggleSidebar(c *gin.Context) {
	reg, ok := s.registry(c)
	if !ok {
		return
	}
	st := parseState(c, reg.Default())
	mgr := tabs.NewManager(reg, tabs.WithState(st.State))
	_ = mgr.Apply(tabs.ToggleSidebar{})
	st.State = mgr.State()
	c.Redirect(http.StatusSeeOther, st.link("/editor"))
}

func (s *Server) contact(c *gin.Context) {
	form := contact.Form{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}
	draft := contact.Compose(s.content.Current().ContactEmail, form)
	log.Info(log.CatWeb, "contact draft", "subject", draft.Subject)
	c.Redirect(http.StatusSeeOther, draft.MailtoURL())
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
