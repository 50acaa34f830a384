package sitemap

import (
	"encoding/xml"
	"io"
	"strconv"
	"time"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []xmlSitemap `xml:"sitemap"`
}

type xmlSitemap struct {
	Loc string `xml:"loc"`
}

func writeURLSet(w io.Writer, entries []Entry) error {
	set := urlSet{Xmlns: xmlns, URLs: make([]xmlURL, 0, len(entries))}
	for _, e := range entries {
		u := xmlURL{Loc: e.Loc}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format(time.RFC3339)
		}
		if e.Priority > 0 {
			u.Priority = strconv.FormatFloat(e.Priority, 'f', 1, 64)
		}
		set.URLs = append(set.URLs, u)
	}
	return encode(w, set)
}

func writeIndex(w io.Writer, locs []string) error {
	idx := sitemapIndex{Xmlns: xmlns, Sitemaps: make([]xmlSitemap, 0, len(locs))}
	for _, l := range locs {
		idx.Sitemaps = append(idx.Sitemaps, xmlSitemap{Loc: l})
	}
	return encode(w, idx)
}

func encode(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
