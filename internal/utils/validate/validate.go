package validate

import (
	"regexp"

	"github.com/songbridge/songbridge/internal/utils/errs"
)

type LinkKind string

const (
	LinkTrack    LinkKind = "track"
	LinkAlbum    LinkKind = "album"
	LinkPlaylist LinkKind = "playlist"
)

var (
	linkRe     = regexp.MustCompile(`^https://open\.[a-z]+\.com/(playlist|track|album)/[a-zA-Z0-9]+(\?si=[a-zA-Z0-9\-_]+(&pt=[a-zA-Z0-9]+)?)?$`)
	trackRe    = regexp.MustCompile(`/track/([^?]+)`)
	albumRe    = regexp.MustCompile(`/album/([^?]+)`)
	playlistRe = regexp.MustCompile(`/playlist/([^?]+)`)
)

func ValidateLink(link string) error {
	if !linkRe.MatchString(link) {
		return errs.ErrInvalidLink
	}

	return nil
}

// ClassifyLink reports the kind of reference a link points at.
func ClassifyLink(link string) (LinkKind, error) {
	switch {
	case trackRe.MatchString(link):
		return LinkTrack, nil
	case albumRe.MatchString(link):
		return LinkAlbum, nil
	case playlistRe.MatchString(link):
		return LinkPlaylist, nil
	default:
		return "", errs.ErrInvalidLink
	}
}

// ExtractLinkID pulls the opaque catalog id out of a reference link.
func ExtractLinkID(link string, kind LinkKind) (string, error) {
	var re *regexp.Regexp
	switch kind {
	case LinkTrack:
		re = trackRe
	case LinkAlbum:
		re = albumRe
	case LinkPlaylist:
		re = playlistRe
	default:
		return "", errs.ErrInvalidLink
	}

	match := re.FindStringSubmatch(link)
	if match == nil {
		return "", errs.ErrInvalidLink
	}

	return match[1], nil
}
