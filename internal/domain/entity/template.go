package entity

import (
	"fmt"
	"time"
)

// FieldType enumerates every renderable region of the invoice template.
// The set is closed: a TemplateConfig must carry a FieldConfig for each.
type FieldType string

const (
	FieldLogo            FieldType = "logo"
	FieldInvoiceNumber   FieldType = "invoice_number"
	FieldInvoiceDate     FieldType = "invoice_date"
	FieldBillFrom        FieldType = "bill_from"
	FieldBillTo          FieldType = "bill_to"
	FieldBillingAddress  FieldType = "billing_address"
	FieldShippingAddress FieldType = "shipping_address"
	FieldLineItems       FieldType = "line_items"
	FieldNotes           FieldType = "notes"
	FieldTotals          FieldType = "totals"
)

// AllFieldTypes lists every field type in canonical order.
var AllFieldTypes = []FieldType{
	FieldLogo,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldBillFrom,
	FieldBillTo,
	FieldBillingAddress,
	FieldShippingAddress,
	FieldLineItems,
	FieldNotes,
	FieldTotals,
}

// FieldPosition places a field on the template canvas, in canvas pixels.
type FieldPosition struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ZIndex int     `json:"z_index"`
}

// FieldStyle holds the visual styling of a single field.
type FieldStyle struct {
	FontSize    float64 `json:"font_size"`
	FontFamily  string  `json:"font_family"`
	FontWeight  string  `json:"font_weight"` // normal or bold
	Color       string  `json:"color"`
	Background  string  `json:"background_color"`
	BorderColor string  `json:"border_color"`
	BorderWidth float64 `json:"border_width"`
	Padding     float64 `json:"padding"`
	TextAlign   string  `json:"text_align"` // left, center or right
}

// FieldConfig is the full configuration of one template field.
type FieldConfig struct {
	ID       string        `json:"id"`
	Type     FieldType     `json:"type"`
	Label    string        `json:"label"`
	Visible  bool          `json:"visible"`
	Position FieldPosition `json:"position"`
	Style    FieldStyle    `json:"style"`
}

// GlobalStyles holds template-wide colors and typography.
type GlobalStyles struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
	FontFamily     string `json:"font_family"`
	Background     string `json:"background_color"`
}

// LogoConfig holds the uploaded logo image and its placement.
type LogoConfig struct {
	Path      string        `json:"path"`
	Position  FieldPosition `json:"position"`
	MaxWidth  float64       `json:"max_width"`
	MaxHeight float64       `json:"max_height"`
}

// LayoutZone names one of the three vertical template zones.
type LayoutZone string

const (
	ZoneHeader LayoutZone = "header"
	ZoneBody   LayoutZone = "body"
	ZoneFooter LayoutZone = "footer"
)

// TemplateLayout orders fields within each zone.
type TemplateLayout struct {
	HeaderFields []FieldType `json:"header_fields"`
	BodyFields   []FieldType `json:"body_fields"`
	FooterFields []FieldType `json:"footer_fields"`
}

// TemplateConfig is the single reusable visual template applied to every
// rendered invoice. It persists across sessions.
type TemplateConfig struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GlobalStyles GlobalStyles              `json:"global_styles"`
	Logo         LogoConfig                `json:"logo"`
	Fields       map[FieldType]FieldConfig `json:"fields"`
	Layout       TemplateLayout            `json:"layout"`
}

// Validate checks that the config carries exactly one FieldConfig per
// known field type and no unknown ones.
func (t *TemplateConfig) Validate() error {
	for _, ft := range AllFieldTypes {
		fc, ok := t.Fields[ft]
		if !ok {
			return fmt.Errorf("template is missing field config for %q", ft)
		}
		if fc.Type != ft {
			return fmt.Errorf("field config %q declares mismatched type %q", ft, fc.Type)
		}
	}
	for ft := range t.Fields {
		if !isKnownFieldType(ft) {
			return fmt.Errorf("template carries unknown field type %q", ft)
		}
	}
	return nil
}

func isKnownFieldType(ft FieldType) bool {
	for _, known := range AllFieldTypes {
		if ft == known {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the template config.
func (t *TemplateConfig) Clone() *TemplateConfig {
	c := *t
	c.Fields = make(map[FieldType]FieldConfig, len(t.Fields))
	for ft, fc := range t.Fields {
		c.Fields[ft] = fc
	}
	c.Layout.HeaderFields = append([]FieldType(nil), t.Layout.HeaderFields...)
	c.Layout.BodyFields = append([]FieldType(nil), t.Layout.BodyFields...)
	c.Layout.FooterFields = append([]FieldType(nil), t.Layout.FooterFields...)
	return &c
}

func defaultFieldStyle() FieldStyle {
	return FieldStyle{
		FontSize:    14,
		FontFamily:  "inherit",
		FontWeight:  "normal",
		Color:       "#1f2937",
		Background:  "transparent",
		BorderColor: "transparent",
		BorderWidth: 0,
		Padding:     8,
		TextAlign:   "left",
	}
}

// DefaultTemplate builds the built-in template configuration.
func DefaultTemplate() *TemplateConfig {
	now := time.Now()

	field := func(ft FieldType, label string, visible bool, pos FieldPosition, style FieldStyle) FieldConfig {
		return FieldConfig{
			ID:       string(ft),
			Type:     ft,
			Label:    label,
			Visible:  visible,
			Position: pos,
			Style:    style,
		}
	}
	base := defaultFieldStyle()
	rightAligned := base
	rightAligned.TextAlign = "right"
	notesStyle := base
	notesStyle.FontSize = 12

	return &TemplateConfig{
		ID:        "default",
		Name:      "Default Invoice Template",
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
		GlobalStyles: GlobalStyles{
			PrimaryColor:   "#1a56db",
			SecondaryColor: "#6b7280",
			AccentColor:    "#059669",
			FontFamily:     "Helvetica",
			Background:     "#ffffff",
		},
		Logo: LogoConfig{
			Position:  FieldPosition{X: 0, Y: 0, Width: 150, Height: 60, ZIndex: 1},
			MaxWidth:  200,
			MaxHeight: 80,
		},
		Fields: map[FieldType]FieldConfig{
			FieldLogo:            field(FieldLogo, "Company Logo", true, FieldPosition{X: 40, Y: 40, Width: 150, Height: 60, ZIndex: 1}, base),
			FieldInvoiceNumber:   field(FieldInvoiceNumber, "Invoice Number", true, FieldPosition{X: 500, Y: 40, Width: 220, Height: 30, ZIndex: 1}, rightAligned),
			FieldInvoiceDate:     field(FieldInvoiceDate, "Invoice Date", true, FieldPosition{X: 500, Y: 75, Width: 220, Height: 30, ZIndex: 1}, rightAligned),
			FieldBillFrom:        field(FieldBillFrom, "Bill From", true, FieldPosition{X: 40, Y: 130, Width: 300, Height: 110, ZIndex: 1}, base),
			FieldBillTo:          field(FieldBillTo, "Bill To", true, FieldPosition{X: 400, Y: 130, Width: 320, Height: 110, ZIndex: 1}, base),
			FieldBillingAddress:  field(FieldBillingAddress, "Billing Address", false, FieldPosition{X: 40, Y: 260, Width: 300, Height: 70, ZIndex: 1}, base),
			FieldShippingAddress: field(FieldShippingAddress, "Shipping Address", true, FieldPosition{X: 40, Y: 260, Width: 300, Height: 70, ZIndex: 1}, base),
			FieldLineItems:       field(FieldLineItems, "Line Items", true, FieldPosition{X: 40, Y: 360, Width: 714, Height: 280, ZIndex: 1}, base),
			FieldNotes:           field(FieldNotes, "Notes", true, FieldPosition{X: 40, Y: 670, Width: 400, Height: 120, ZIndex: 1}, notesStyle),
			FieldTotals:          field(FieldTotals, "Totals", true, FieldPosition{X: 480, Y: 670, Width: 240, Height: 120, ZIndex: 1}, rightAligned),
		},
		Layout: TemplateLayout{
			HeaderFields: []FieldType{FieldLogo, FieldInvoiceNumber, FieldInvoiceDate},
			BodyFields:   []FieldType{FieldBillFrom, FieldBillTo, FieldBillingAddress, FieldShippingAddress, FieldLineItems},
			FooterFields: []FieldType{FieldNotes, FieldTotals},
		},
	}
}
