package domain

// BrandColors is a three color palette expressed as hex strings.
type BrandColors struct {
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
	Neutral string `json:"neutral"`
}

// BrandIdentity is a generated brand proposal. It is never persisted here.
type BrandIdentity struct {
	BrandName string      `json:"brandName"`
	Colors    BrandColors `json:"colors"`
	Tagline   string      `json:"tagline"`
}
