// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package links

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidVideo is returned when no YouTube video ID can be found.
	ErrInvalidVideo = errors.New("invalid YouTube URL or video ID")

	// ErrInvalidUsername is returned for a malformed Instagram username.
	ErrInvalidUsername = errors.New("invalid Instagram username format")

	// ErrEmptyInput is returned for blank input.
	ErrEmptyInput = errors.New("input is required")
)

var videoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9._]{1,30}$`)

// Video describes a YouTube video by ID.
type Video struct {
	ID           string `json:"video_id"`
	WatchURL     string `json:"watch_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	EmbedURL     string `json:"embed_url"`
}

// VideoID extracts the video ID from a watch, short, or embed URL, or
// accepts a bare 11-character ID.
func VideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}
	for _, re := range videoPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVideo, input)
}

// LookupVideo returns the public URLs for a video.
func LookupVideo(input string) (Video, error) {
	id, err := VideoID(input)
	if err != nil {
		return Video{}, err
	}
	return Video{
		ID:           id,
		WatchURL:     "https://www.youtube.com/watch?v=" + id,
		ThumbnailURL: "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg",
		EmbedURL:     "https://www.youtube.com/embed/" + id,
	}, nil
}

// Profile is a normalised Instagram profile reference.
type Profile struct {
	Username   string `json:"username"`
	ProfileURL string `json:"profile_url"`
}

// LookupProfile strips a leading '@', lower-cases the username, validates
// it, and returns the profile URL.
func LookupProfile(username string) (Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Profile{}, ErrEmptyInput
	}
	clean := strings.ToLower(strings.TrimPrefix(username, "@"))
	if !usernamePattern.MatchString(clean) {
		return Profile{}, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return Profile{Username: clean, ProfileURL: "https://instagram.com/" + clean}, nil
}
