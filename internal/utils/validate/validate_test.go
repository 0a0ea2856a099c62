package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/songbridge/songbridge/internal/utils/errs"
)

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{
			name: "PlainTrackLink",
			link: "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
		},
		{
			name: "AlbumLink",
			link: "https://open.spotify.com/album/2noRn2Aes5aoNVsU6iWThc",
		},
		{
			name: "PlaylistLinkWithShareSuffix",
			link: "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc-DEF_123",
		},
		{
			name: "TrackLinkWithShareAndPlatformSuffix",
			link: "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC?si=abc123&pt=deadbeef",
		},
		{
			name:    "NotALink",
			link:    "hello world",
			wantErr: true,
		},
		{
			name:    "HTTPScheme",
			link:    "http://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
			wantErr: true,
		},
		{
			name:    "UnsupportedResource",
			link:    "https://open.spotify.com/artist/0OdUWJ0sBjDrqHygGUXeCF",
			wantErr: true,
		},
		{
			name:    "TrailingGarbage",
			link:    "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC/extra",
			wantErr: true,
		},
		{
			name:    "Empty",
			link:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLink(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidLink)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    LinkKind
		wantErr bool
	}{
		{
			name: "Track",
			link: "https://open.spotify.com/track/abc",
			want: LinkTrack,
		},
		{
			name: "Album",
			link: "https://open.spotify.com/album/abc",
			want: LinkAlbum,
		},
		{
			name: "Playlist",
			link: "https://open.spotify.com/playlist/abc",
			want: LinkPlaylist,
		},
		{
			name:    "Unknown",
			link:    "https://open.spotify.com/artist/abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ClassifyLink(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidLink)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestExtractLinkID(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		kind    LinkKind
		want    string
		wantErr bool
	}{
		{
			name: "TrackID",
			link: "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
			kind: LinkTrack,
			want: "4uLU6hMCjMI75M1A2tKUQC",
		},
		{
			name: "IDStopsAtQuery",
			link: "https://open.spotify.com/playlist/37i9dQZF1DX?si=xyz",
			kind: LinkPlaylist,
			want: "37i9dQZF1DX",
		},
		{
			name: "AlbumID",
			link: "https://open.spotify.com/album/2noRn2Aes5aoNVsU6iWThc",
			kind: LinkAlbum,
			want: "2noRn2Aes5aoNVsU6iWThc",
		},
		{
			name:    "KindMismatch",
			link:    "https://open.spotify.com/album/2noRn2Aes5aoNVsU6iWThc",
			kind:    LinkTrack,
			wantErr: true,
		},
		{
			name:    "UnknownKind",
			link:    "https://open.spotify.com/track/abc",
			kind:    LinkKind("artist"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractLinkID(tt.link, tt.kind)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidLink)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
