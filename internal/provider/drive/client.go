// Package drive implements the bulk sync provider backed by a Google
// Drive-style file store behind an OAuth2 authorization-code + PKCE flow.
// The whole workspace is serialized into one JSON document inside a
// dedicated remote folder; per-item operations are not available.
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

const (
	defaultAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultAPIBaseURL  = "https://www.googleapis.com/drive/v3"
	defaultUploadURL   = "https://www.googleapis.com/upload/drive/v3"
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	folderMimeType = "application/vnd.google-apps.folder"

	// rootFolderName and dataFileName identify the remote storage location.
	rootFolderName = "apivault"
	dataFileName   = "apivault_sync.json"
)

var driveScopes = []string{
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// Config holds the OAuth2 application settings for the drive provider. The
// endpoint fields default to Google's and exist so tests can point the
// client at a local server.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	AuthURL     string
	TokenURL    string
	APIBaseURL  string
	UploadURL   string
	UserInfoURL string
	Timeout     time.Duration
}

// Client is the drive-backed bulk provider. Safe for concurrent use.
type Client struct {
	client      *resty.Client
	oauth       *oauth2.Config
	uploadURL   string
	userInfoURL string

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	folderID     string
	user         *models.User
	// verifiers holds outstanding PKCE verifiers keyed by CSRF state until
	// the matching code exchange consumes them.
	verifiers map[string]string
}

type driveFile struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	MimeType string   `json:"mimeType"`
	Parents  []string `json:"parents,omitempty"`
}

type driveFileList struct {
	Files []driveFile `json:"files"`
}

// New constructs a Client from cfg.
func New(cfg Config) *Client {
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaultAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.UploadURL == "" {
		cfg.UploadURL = defaultUploadURL
	}
	if cfg.UserInfoURL == "" {
		cfg.UserInfoURL = defaultUserInfoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{
		client:      cli,
		uploadURL:   strings.TrimRight(cfg.UploadURL, "/"),
		userInfoURL: cfg.UserInfoURL,
		verifiers:   make(map[string]string),
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       driveScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
	}
}

// ID implements provider.Provider.
func (c *Client) ID() provider.ID { return provider.Drive }

// SupportsItemOps implements provider.Provider.
func (c *Client) SupportsItemOps() bool { return false }

// IsAuthenticated implements provider.Provider.
func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken != ""
}

// CurrentUser implements provider.Provider.
func (c *Client) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// SignOut implements provider.Provider. Tokens, the folder-id cache, the
// user identity and any outstanding PKCE verifiers are all discarded.
func (c *Client) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.refreshToken = ""
	c.folderID = ""
	c.user = nil
	c.verifiers = make(map[string]string)
}

// PushBulk implements provider.BulkProvider: the snapshot overwrites the
// single remote data file, creating it on first push.
func (c *Client) PushBulk(ctx context.Context, snapshot models.SyncSnapshot) error {
	folderID, err := c.rootFolderID()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode sync snapshot: %w", err)
	}

	fileID, err := c.findDataFile(ctx, folderID)
	if err != nil {
		return err
	}

	if fileID != "" {
		return c.updateFileContent(ctx, fileID, payload)
	}
	return c.createDataFile(ctx, folderID, payload)
}

// PullBulk implements provider.BulkProvider. A missing remote file yields an
// empty snapshot, not an error: the first device to sync starts from
// nothing.
func (c *Client) PullBulk(ctx context.Context) (models.SyncSnapshot, error) {
	folderID, err := c.rootFolderID()
	if err != nil {
		return models.SyncSnapshot{}, err
	}

	fileID, err := c.findDataFile(ctx, folderID)
	if err != nil {
		return models.SyncSnapshot{}, err
	}
	if fileID == "" {
		return models.SyncSnapshot{}, nil
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.SyncSnapshot{}, err
	}
	resp, err := req.
		SetQueryParam("alt", "media").
		Get("/files/" + fileID)
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("download sync file: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncSnapshot{}, err
	}

	var snapshot models.SyncSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("decode sync file: %w", err)
	}
	return snapshot, nil
}

// ensureRootFolder looks the storage folder up by name and creates it when
// absent, caching the id for the rest of the session.
func (c *Client) ensureRootFolder(ctx context.Context) error {
	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", rootFolderName, folderMimeType)

	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetQueryParam("q", query).
		SetQueryParam("fields", "files(id, name)").
		Get("/files")
	if err != nil {
		return fmt.Errorf("search root folder: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var list driveFileList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return fmt.Errorf("decode folder search: %w", err)
	}

	if len(list.Files) > 0 {
		c.mu.Lock()
		c.folderID = list.Files[0].ID
		c.mu.Unlock()
		return nil
	}

	req, err = c.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err = req.
		SetQueryParam("fields", "id").
		SetHeader("Content-Type", "application/json").
		SetBody(driveFile{Name: rootFolderName, MimeType: folderMimeType}).
		Post("/files")
	if err != nil {
		return fmt.Errorf("create root folder: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var created driveFile
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return fmt.Errorf("decode created folder: %w", err)
	}

	c.mu.Lock()
	c.folderID = created.ID
	c.mu.Unlock()
	return nil
}

func (c *Client) rootFolderID() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.folderID == "" {
		return "", fmt.Errorf("storage folder not initialized: %w", provider.ErrNotAuthenticated)
	}
	return c.folderID, nil
}

func (c *Client) findDataFile(ctx context.Context, folderID string) (string, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and trashed=false", dataFileName, folderID)

	req, err := c.authedRequest(ctx)
	if err != nil {
		return "", err
	}
	resp, err := req.
		SetQueryParam("q", query).
		SetQueryParam("fields", "files(id, name)").
		Get("/files")
	if err != nil {
		return "", fmt.Errorf("search sync file: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var list driveFileList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return "", fmt.Errorf("decode file search: %w", err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].ID, nil
}

func (c *Client) updateFileContent(ctx context.Context, fileID string, payload []byte) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetQueryParam("uploadType", "media").
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Patch(c.uploadURL + "/files/" + fileID)
	if err != nil {
		return fmt.Errorf("update sync file: %w", err)
	}
	return mapHTTPError(resp)
}

// createDataFile uploads metadata and content together as multipart/related,
// the Drive v3 shape for creating a file with content in one call.
func (c *Client) createDataFile(ctx context.Context, folderID string, payload []byte) error {
	metadata, err := json.Marshal(driveFile{
		Name:     dataFileName,
		MimeType: "application/json",
		Parents:  []string{folderID},
	})
	if err != nil {
		return fmt.Errorf("encode file metadata: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return fmt.Errorf("create metadata part: %w", err)
	}
	if _, err = part.Write(metadata); err != nil {
		return fmt.Errorf("write metadata part: %w", err)
	}

	part, err = mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json"}})
	if err != nil {
		return fmt.Errorf("create content part: %w", err)
	}
	if _, err = part.Write(payload); err != nil {
		return fmt.Errorf("write content part: %w", err)
	}
	if err = mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetQueryParam("uploadType", "multipart").
		SetHeader("Content-Type", "multipart/related; boundary="+mw.Boundary()).
		SetBody(body.Bytes()).
		Post(c.uploadURL + "/files")
	if err != nil {
		return fmt.Errorf("create sync file: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *Client) authedRequest(ctx context.Context) (*resty.Request, error) {
	c.mu.RLock()
	token := c.accessToken
	c.mu.RUnlock()
	if token == "" {
		return nil, provider.ErrNotAuthenticated
	}
	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return provider.ErrNotAuthenticated
	}
	return &provider.RemoteError{
		Status: resp.StatusCode(),
		Body:   strings.TrimSpace(string(resp.Body())),
	}
}
