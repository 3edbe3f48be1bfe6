package utils

import "github.com/rs/xid"

// ProfileIDGenerator produces opaque unique identifiers for newly created
// student profiles. xid values are short, URL-safe, and sortable by creation
// time, which keeps the most-recent-first store ordering easy to eyeball.
type ProfileIDGenerator struct {
}

func NewProfileIDGenerator() *ProfileIDGenerator {
	return &ProfileIDGenerator{}
}

func (g *ProfileIDGenerator) Generate() string {
	return xid.New().String()
}
