//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=mock_service_test.go -package=uploader Service

package uploader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Service defines the YouTube API operations tubeflow uses. The concrete
// implementation wraps *youtube.Service; tests substitute a mock.
type Service interface {
	// MyChannel is a lightweight read used both to verify the credential
	// and to learn the channel's uploads playlist.
	MyChannel(ctx context.Context) (*Channel, error)

	// InsertVideo performs the resumable chunked upload and returns the
	// created asset.
	InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader, progress googleapi.ProgressUpdater) (*youtube.Video, error)

	SetThumbnail(ctx context.Context, videoID string, media io.Reader) error

	VideoStatus(ctx context.Context, videoID string) (*VideoStatus, error)

	// UploadsPage lists one page of the channel's uploaded videos.
	UploadsPage(ctx context.Context, uploadsPlaylistID, pageToken string) (*UploadsPage, error)

	MyPlaylists(ctx context.Context, pageToken string) ([]Playlist, string, error)
	CreatePlaylist(ctx context.Context, title string) (string, error)
	AddPlaylistItem(ctx context.Context, playlistID, videoID string) error
}

// Channel identifies the authenticated user's channel.
type Channel struct {
	ID                string
	UploadsPlaylistID string
}

// VideoStatus is the remote asset's upload/processing state.
type VideoStatus struct {
	Upload     string // "uploaded", "processed", "failed", "rejected"
	Processing string // "processing", "succeeded", "failed", or ""
}

// UploadedVideo is one entry of the channel's uploads listing.
type UploadedVideo struct {
	Title   string
	VideoID string
}

// UploadsPage is one page of the uploads listing, continued via the
// page token.
type UploadsPage struct {
	Items         []UploadedVideo
	NextPageToken string
}

// Playlist is one of the channel's playlists.
type Playlist struct {
	ID    string
	Title string
}

// chunkSize is the resumable upload chunk size. YouTube requires a
// multiple of 256 KiB.
const chunkSize = 8 * 1024 * 1024

// youtubeService implements Service on top of the real API.
type youtubeService struct {
	yt *youtube.Service
}

func newYouTubeService(ctx context.Context, httpClient *http.Client) (*youtubeService, error) {
	yt, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}
	return &youtubeService{yt: yt}, nil
}

func (s *youtubeService) MyChannel(ctx context.Context) (*Channel, error) {
	resp, err := s.yt.Channels.List([]string{"id", "contentDetails"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch my channel: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("no channel found for the authenticated user")
	}
	ch := resp.Items[0]
	channel := &Channel{ID: ch.Id}
	if ch.ContentDetails != nil && ch.ContentDetails.RelatedPlaylists != nil {
		channel.UploadsPlaylistID = ch.ContentDetails.RelatedPlaylists.Uploads
	}
	return channel, nil
}

func (s *youtubeService) InsertVideo(ctx context.Context, video *youtube.Video, media io.Reader, progress googleapi.ProgressUpdater) (*youtube.Video, error) {
	call := s.yt.Videos.Insert([]string{"snippet", "status"}, video).
		Media(media, googleapi.ChunkSize(chunkSize)).
		Context(ctx)
	if progress != nil {
		call = call.ProgressUpdater(progress)
	}
	return call.Do()
}

func (s *youtubeService) SetThumbnail(ctx context.Context, videoID string, media io.Reader) error {
	_, err := s.yt.Thumbnails.Set(videoID).Media(media).Context(ctx).Do()
	return err
}

func (s *youtubeService) VideoStatus(ctx context.Context, videoID string) (*VideoStatus, error) {
	resp, err := s.yt.Videos.List([]string{"status", "processingDetails"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status of video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}
	item := resp.Items[0]
	status := &VideoStatus{}
	if item.Status != nil {
		status.Upload = item.Status.UploadStatus
	}
	if item.ProcessingDetails != nil {
		status.Processing = item.ProcessingDetails.ProcessingStatus
	}
	return status, nil
}

func (s *youtubeService) UploadsPage(ctx context.Context, uploadsPlaylistID, pageToken string) (*UploadsPage, error) {
	call := s.yt.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(uploadsPlaylistID).
		MaxResults(50).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	page := &UploadsPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}
		page.Items = append(page.Items, UploadedVideo{
			Title:   item.Snippet.Title,
			VideoID: item.Snippet.ResourceId.VideoId,
		})
	}
	return page, nil
}

func (s *youtubeService) MyPlaylists(ctx context.Context, pageToken string) ([]Playlist, string, error) {
	call := s.yt.Playlists.List([]string{"id", "snippet"}).Mine(true).MaxResults(50).Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list playlists: %w", err)
	}
	playlists := make([]Playlist, 0, len(resp.Items))
	for _, item := range resp.Items {
		p := Playlist{ID: item.Id}
		if item.Snippet != nil {
			p.Title = item.Snippet.Title
		}
		playlists = append(playlists, p)
	}
	return playlists, resp.NextPageToken, nil
}

func (s *youtubeService) CreatePlaylist(ctx context.Context, title string) (string, error) {
	playlist := &youtube.Playlist{
		Snippet: &youtube.PlaylistSnippet{Title: title},
		Status:  &youtube.PlaylistStatus{PrivacyStatus: "private"},
	}
	resp, err := s.yt.Playlists.Insert([]string{"snippet", "status"}, playlist).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create playlist %q: %w", title, err)
	}
	return resp.Id, nil
}

func (s *youtubeService) AddPlaylistItem(ctx context.Context, playlistID, videoID string) error {
	item := &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			PlaylistId: playlistID,
			ResourceId: &youtube.ResourceId{
				Kind:    "youtube#video",
				VideoId: videoID,
			},
		},
	}
	_, err := s.yt.PlaylistItems.Insert([]string{"snippet"}, item).Context(ctx).Do()
	return err
}
