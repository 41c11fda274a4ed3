package api

import (
	"context"
	"fmt"

	ytsearch "github.com/ppalone/ytsearch"
	"github.com/raitonoberu/ytmusic"
)

// LookupTrackURL finds a playable link for a song. YouTube Music search first,
// plain YouTube search as the backup. Best-effort: an empty string means
// neither source had a hit.
func LookupTrackURL(ctx context.Context, title, artist string) string {
	query := fmt.Sprintf("%s %s", title, artist)

	if link := searchMusic(query); link != "" {
		return link
	}
	return searchVideo(ctx, query)
}

func searchMusic(query string) string {
	s := ytmusic.TrackSearch(query)
	r, err := s.Next()
	if err != nil || len(r.Tracks) == 0 {
		return ""
	}
	return "https://music.youtube.com/watch?v=" + r.Tracks[0].VideoID
}

func searchVideo(ctx context.Context, query string) string {
	c := ytsearch.NewClient(nil)
	r, err := c.Search(ctx, query)
	if err != nil || len(r.Results) == 0 {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + r.Results[0].VideoID
}
