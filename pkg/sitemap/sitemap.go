// Copyright © 2018 One Concern

// Package sitemap loads, edits and re-serializes sitemap-protocol XML documents.
//
// The serializer emits a canonical layout (one field per line, fixed
// indentation), so a document that round-trips without any field change is
// byte-identical to its input.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"os"
	"strings"

	"github.com/oneconcern/sitemod/pkg/status"
	"github.com/spf13/afero"
)

// Namespace is the sitemap protocol namespace
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const (
	header    = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	openTag   = `<urlset xmlns="` + Namespace + `">` + "\n"
	closeTag  = "</urlset>\n"
	indentURL = "    "
	indentElt = "        "
)

// Entry is one <url> element of the sitemap. Loc is its identity and is
// never rewritten; the three remaining fields are the mutable crawl hints.
// An empty field means the element is absent from the document.
type Entry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []*Entry `xml:"url"`
}

// Document is a parsed sitemap, keeping the original bytes around so callers
// can detect a no-op rewrite.
type Document struct {
	entries []*Entry
	raw     []byte
}

// Load parses the sitemap at path. A missing file surfaces as
// status.ErrSitemapMissing, an unparseable one as status.ErrSitemapInvalid;
// both are fatal for the whole run.
func Load(fs afero.Fs, path string) (*Document, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, status.ErrSitemapMissing.WrapMessage(path)
		}
		return nil, status.ErrSitemapMissing.Wrap(err)
	}
	var set urlset
	if err := xml.Unmarshal(raw, &set); err != nil {
		return nil, status.ErrSitemapInvalid.Wrap(err)
	}
	for _, e := range set.URLs {
		e.Loc = strings.TrimSpace(e.Loc)
		e.LastMod = strings.TrimSpace(e.LastMod)
		e.ChangeFreq = strings.TrimSpace(e.ChangeFreq)
		e.Priority = strings.TrimSpace(e.Priority)
	}
	return &Document{entries: set.URLs, raw: raw}, nil
}

// Entries returns the document's <url> elements in document order
func (d *Document) Entries() []*Entry {
	return d.entries
}

// Find returns the entry whose <loc> equals loc, or nil
func (d *Document) Find(loc string) *Entry {
	for _, e := range d.entries {
		if e.Loc == loc {
			return e
		}
	}
	return nil
}

// Raw returns the bytes the document was loaded from
func (d *Document) Raw() []byte {
	return d.raw
}

// Apply sets the entry's crawl hints, returning true when anything changed.
// When all three fields already carry the given values this is a no-op.
// Fields absent from the document are created by setting them.
func (e *Entry) Apply(lastmod, priority, changefreq string) bool {
	if e.LastMod == lastmod && e.Priority == priority && e.ChangeFreq == changefreq {
		return false
	}
	e.LastMod = lastmod
	e.Priority = priority
	e.ChangeFreq = changefreq
	return true
}

// Serialize renders the whole document in canonical form, untouched entries
// included. All text content is XML-escaped.
func (d *Document) Serialize() []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(openTag)
	for _, e := range d.entries {
		buf.WriteString(indentURL + "<url>\n")
		writeElt(&buf, "loc", e.Loc)
		if e.LastMod != "" {
			writeElt(&buf, "lastmod", e.LastMod)
		}
		if e.ChangeFreq != "" {
			writeElt(&buf, "changefreq", e.ChangeFreq)
		}
		if e.Priority != "" {
			writeElt(&buf, "priority", e.Priority)
		}
		buf.WriteString(indentURL + "</url>\n")
	}
	buf.WriteString(closeTag)
	return buf.Bytes()
}

func writeElt(buf *bytes.Buffer, name, text string) {
	buf.WriteString(indentElt + "<" + name + ">")
	// EscapeText on a bytes.Buffer cannot fail
	_ = xml.EscapeText(buf, []byte(text))
	buf.WriteString("</" + name + ">\n")
}
