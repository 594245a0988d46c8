package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/oauth2/clientcredentials"
)

type contentTypeCollection struct {
	Items []ContentType `json:"items"`
}

type entryCollection struct {
	Items []Entry `json:"items"`
}

type assetCollection struct {
	Items []Asset `json:"items"`
}

type localeCollection struct {
	Items []Locale `json:"items"`
}

type tagCollection struct {
	Items []Tag `json:"items"`
}

type mapCollection struct {
	Items []map[string]interface{} `json:"items"`
}

func (c *Client) getJSON(
	client *http.Client,
	url string,
	result interface{},
) error {
	c.Logger.Debugf("making contentful request using URL %s...", url)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}

	if c.AuthType == AUTH_TYPE_TOKEN {
		req.Header.Add("Authorization", "Bearer "+c.ManagementToken)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/vnd.contentful.management.v1+json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("fetch results failed: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.Logger.Debugf("read %d bytes, unmarshaling JSON...", len(body))

	return json.Unmarshal(body, result)
}

func (c *Client) downloadAssets(
	client *http.Client,
	assets []Asset,
	exportDir string,
) error {
	assetsDir := filepath.Join(exportDir, "assets")

	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return fmt.Errorf("create assets directory: %w", err)
	}

	for _, asset := range assets {
		for locale, file := range asset.Fields.File {
			url := normalizeAssetURL(cast.ToString(file["url"]))
			fileName := cast.ToString(file["fileName"])

			if url == "" || fileName == "" {
				c.Logger.Warnf(
					"skipping asset %s (%s) with no file url or name",
					asset.Sys.ID,
					locale,
				)
				continue
			}

			err := c.downloadFile(client, url, filepath.Join(assetsDir, fileName))
			if err != nil {
				return fmt.Errorf("download asset %s failed: %s", asset.Sys.ID, err)
			}
		}
	}

	return nil
}

func (c *Client) downloadFile(
	client *http.Client,
	url string,
	path string,
) error {
	c.Logger.Debugf("downloading %s to %s...", url, path)

	resp, err := client.Get(url)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("fetch file failed: %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	defer out.Close()

	_, err = io.Copy(out, resp.Body)

	return err
}

// Asset file URLs come back protocol-relative from the API.
func normalizeAssetURL(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}

	return url
}

func (c *Client) createHttpClient() (*http.Client, error) {
	if c.AuthType == AUTH_TYPE_OAUTH {
		oauthConfig := &clientcredentials.Config{
			ClientID:     c.OAuthClientID,
			ClientSecret: c.OAuthClientSecret,
			TokenURL:     c.OAuthTokenURL,
			Scopes:       c.OAuthScopes,
		}

		return oauthConfig.Client(context.TODO()), nil
	}

	return &http.Client{}, nil
}
