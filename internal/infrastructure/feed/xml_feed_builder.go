// Package feed construye el feed XML del menú para agregadores y socios.
// El documento se emite en forma canónica (C14N) para que el digest sea estable entre ejecuciones.
package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/menu-api/internal/application/export"
)

// Namespace del feed. Cambiar solo con una versión nueva del formato.
const Namespace = "urn:menu-api:feed:1"

var _ export.MenuFeedBuilder = (*XMLFeedBuilder)(nil)

// XMLFeedBuilder implementa export.MenuFeedBuilder con etree + c14n.
type XMLFeedBuilder struct{}

// NewXMLFeedBuilder construye el builder.
func NewXMLFeedBuilder() *XMLFeedBuilder { return &XMLFeedBuilder{} }

// BuildMenuFeed arma el documento y lo devuelve canonicalizado.
//
//	<menu xmlns="urn:menu-api:feed:1" title currency generated items>
//	  <category id name>
//	    <item id><name/><description/><price currency/><image/></item>
func (b *XMLFeedBuilder) BuildMenuFeed(_ context.Context, menu *export.PrintableMenu) ([]byte, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("menu")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("title", menu.Title)
	root.CreateAttr("currency", menu.Currency)
	root.CreateAttr("generated", menu.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("items", strconv.Itoa(menu.ItemCount))

	for _, s := range menu.Sections {
		cat := root.CreateElement("category")
		cat.CreateAttr("id", strconv.FormatInt(s.CategoryID, 10))
		cat.CreateAttr("name", s.Category)
		for _, it := range s.Items {
			el := cat.CreateElement("item")
			el.CreateAttr("id", strconv.FormatInt(it.ID, 10))
			el.CreateElement("name").SetText(it.Name)
			if it.Description != "" {
				el.CreateElement("description").SetText(it.Description)
			}
			price := el.CreateElement("price")
			price.CreateAttr("currency", menu.Currency)
			price.SetText(it.Price.StringFixed(2))
			if it.ImageURL != "" {
				el.CreateElement("image").SetText(it.ImageURL)
			}
		}
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	out, err := canonicalizeXML(raw)
	if err != nil {
		return nil, fmt.Errorf("feed: canonicalizar XML: %w", err)
	}
	return out, nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
