// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Avi Malewar

package models

import "net/url"

// Lifestyle describes a student's daily rhythm preference. It is one of the
// four fixed values the profile form offers; anything else is rejected at the
// service boundary.
type Lifestyle string

// The full Lifestyle value set. The strings are part of the persisted wire
// format and must not be renamed.
const (
	NightOwl  Lifestyle = "Night Owl"
	EarlyBird Lifestyle = "Early Bird"
	Indoor    Lifestyle = "Indoor"
	Outdoor   Lifestyle = "Outdoor"
)

// AllLifestyles lists every accepted Lifestyle value, in form order.
var AllLifestyles = []Lifestyle{NightOwl, EarlyBird, Indoor, Outdoor}

// Valid reports whether l is one of the accepted Lifestyle values.
func (l Lifestyle) Valid() bool {
	for _, known := range AllLifestyles {
		if l == known {
			return true
		}
	}
	return false
}

// StudentProfile is the persisted identity and preference record of one
// student. JSON tags match the wire shape the original web client stored, so
// previously persisted data keeps round-tripping unchanged.
type StudentProfile struct {
	// ID is the opaque unique identifier, assigned once at creation and
	// immutable afterwards.
	ID string `json:"id"`

	// Username is the login identifier. It defaults to Name at creation.
	Username string `json:"username,omitempty"`

	// Password is the plaintext shared secret used for session re-entry.
	// Stored and compared as-is: a known, deliberately preserved weakness of
	// the original application. Stripped from every listing.
	Password string `json:"password,omitempty"`

	// Name is the display name shown on profile cards.
	Name string `json:"name"`

	// Branch is the field of study, e.g. "Computer Science".
	Branch string `json:"branch"`

	// Year is the study year label, e.g. "Junior".
	Year string `json:"year"`

	// Bio is free-form self-description text.
	Bio string `json:"bio"`

	// Interests through MovieGenres are ordered string sequences. Order is
	// irrelevant for matching and duplicates are kept as entered.
	Interests       []string `json:"interests"`
	Hobbies         []string `json:"hobbies"`
	MusicGenres     []string `json:"musicGenres"`
	FavoriteArtists []string `json:"favoriteArtists"`
	MovieGenres     []string `json:"movieGenres"`

	// Lifestyle is the daily-rhythm preference.
	Lifestyle Lifestyle `json:"lifestyle"`

	// Avatar is a URL derived deterministically from Name at creation.
	Avatar string `json:"avatar"`
}

// avatarBaseURL is the dicebear endpoint the original client used for
// generated avatars.
const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// AvatarURL derives the deterministic avatar URL for a display name.
// An empty name falls back to the "default" seed, mirroring the original form.
func AvatarURL(name string) string {
	if name == "" {
		name = "default"
	}
	return avatarBaseURL + url.QueryEscape(name)
}

// Sanitized returns a copy of the profile with the password removed.
// Credentials never leave the store boundary in list results.
func (p StudentProfile) Sanitized() StudentProfile {
	p.Password = ""
	return p
}

// Normalize backfills optional fields so that no consumer of a loaded profile
// ever sees a missing value: nil attribute slices become empty slices, a
// missing username falls back to the display name, and a missing avatar is
// re-derived from the name. Older records persisted by earlier versions of the
// client lack some of these fields.
func (p *StudentProfile) Normalize() {
	if p.Username == "" {
		p.Username = p.Name
	}
	if p.Avatar == "" {
		p.Avatar = AvatarURL(p.Name)
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.Hobbies == nil {
		p.Hobbies = []string{}
	}
	if p.MusicGenres == nil {
		p.MusicGenres = []string{}
	}
	if p.FavoriteArtists == nil {
		p.FavoriteArtists = []string{}
	}
	if p.MovieGenres == nil {
		p.MovieGenres = []string{}
	}
}
