package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zehraz1/portfolio/internal/layout"
	"github.com/zehraz1/portfolio/internal/tabs"
)

// defaultChars is the wrap budget when the page has not measured itself.
const defaultChars = 72

// editorState is the editor session carried in the query string, so the
// server keeps nothing per visitor.
//
//	open=a,b  active=b  sidebar=0  chars=N  px=W  vw=V
//
// chars wins over px. px is the measured text column and vw the viewport,
// both in CSS pixels.
type editorState struct {
	tabs.State
	Chars int
	Px    float64
	VW    float64
}

func parseState(c *gin.Context, defaultID string) editorState {
	st := editorState{State: tabs.Initial(defaultID)}

	var open []string
	for _, id := range strings.Split(c.Query("open"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			open = append(open, id)
		}
	}
	if len(open) > 0 {
		st.Open = open
		st.Active = c.DefaultQuery("active", open[len(open)-1])
	}
	st.SidebarOpen = c.Query("sidebar") != "0"

	st.Chars, _ = strconv.Atoi(c.Query("chars"))
	st.Px, _ = strconv.ParseFloat(c.Query("px"), 64)
	st.VW, _ = strconv.ParseFloat(c.Query("vw"), 64)
	return st
}

func (s editorState) measurer() layout.Measurer {
	switch {
	case s.Chars > 0:
		return layout.Fixed(s.Chars)
	case s.Px > 0:
		return layout.Pixels{Width: s.Px, Mobile: layout.IsMobile(s.VW)}
	}
	return layout.Fixed(defaultChars)
}

func (s editorState) values() url.Values {
	v := url.Values{}
	v.Set("open", strings.Join(s.Open, ","))
	v.Set("active", s.Active)
	if !s.SidebarOpen {
		v.Set("sidebar", "0")
	}
	if s.Chars > 0 {
		v.Set("chars", strconv.Itoa(s.Chars))
	}
	if s.Px > 0 {
		v.Set("px", strconv.FormatFloat(s.Px, 'f', -1, 64))
	}
	if s.VW > 0 {
		v.Set("vw", strconv.FormatFloat(s.VW, 'f', -1, 64))
	}
	return v
}

// link builds path with the state's query.
func (s editorState) link(path string) string {
	return path + "?" + s.values().Encode()
}
