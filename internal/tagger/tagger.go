package tagger

import (
	"fmt"
	"strconv"

	id3v2 "github.com/bogem/id3v2/v2"
	"github.com/songbridge/songbridge/internal/app/models"
)

// ID3Tagger writes ID3v2 metadata and cover art into downloaded files.
type ID3Tagger struct{}

func NewTagger() *ID3Tagger {
	return &ID3Tagger{}
}

func (t *ID3Tagger) WriteTags(track *models.Track, path string, cover []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open file for tagging: %w", err)
	}
	defer tag.Close()

	tag.DeleteAllFrames()

	tag.SetTitle(track.Title)
	tag.SetArtist(track.Artist.Name)
	tag.SetAlbum(track.Album.Title)
	tag.AddTextFrame(tag.CommonID("ISRC"), tag.DefaultEncoding(), track.ISRC)
	tag.AddTextFrame(tag.CommonID("BPM"), tag.DefaultEncoding(), strconv.Itoa(int(track.BPM)))
	tag.AddTextFrame(tag.CommonID("Track number/Position in set"), tag.DefaultEncoding(), strconv.Itoa(track.TrackPosition))
	tag.AddTextFrame(tag.CommonID("Length"), tag.DefaultEncoding(), strconv.Itoa(track.Duration))

	if len(cover) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Picture:     cover,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}
