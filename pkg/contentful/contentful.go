package contentful

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type AuthType string

const (
	AUTH_TYPE_TOKEN AuthType = "token"
	AUTH_TYPE_OAUTH AuthType = "oauth"
)

const DEFAULT_API_URL = "https://api.contentful.com"

// Client talks to the Contentful Management API. It owns all network
// access for an export run; callers hand it the space coordinates via
// ExportParams.
type Client struct {
	ApiURL            string
	ManagementToken   string
	AccessToken       string
	AuthType          AuthType
	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthScopes       []string
	Logger            *log.Logger
}

func New(v *viper.Viper, logger *log.Logger) (*Client, error) {
	if v == nil {
		return nil, fmt.Errorf("missing contentful configuration")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("CONTENTFUL")

	apiUrl := v.GetString("apiUrl")
	if apiUrl == "" {
		apiUrl = DEFAULT_API_URL
	}

	var authType AuthType

	s := strings.ToLower(v.GetString("authType"))
	if s == "" || s == string(AUTH_TYPE_TOKEN) {
		authType = AUTH_TYPE_TOKEN
	} else if s == string(AUTH_TYPE_OAUTH) {
		authType = AUTH_TYPE_OAUTH
	} else {
		return nil, fmt.Errorf("invalid authentication type: %s", s)
	}

	c := &Client{
		ApiURL:      strings.TrimSuffix(apiUrl, "/"),
		AccessToken: v.GetString("accessToken"),
		AuthType:    authType,
		Logger:      logger,
	}

	if authType == AUTH_TYPE_TOKEN {
		managementToken := v.GetString("managementToken")
		if managementToken == "" {
			return nil, fmt.Errorf("missing contentful management token")
		}

		c.ManagementToken = managementToken
	} else {
		oauthTokenUrl := v.GetString("oauthTokenUrl")
		if oauthTokenUrl == "" {
			return nil, fmt.Errorf("missing contentful oauth token url")
		}

		oauthClientId := v.GetString("oauthClientId")
		if oauthClientId == "" {
			return nil, fmt.Errorf("missing contentful oauth client ID")
		}

		oauthClientSecret := v.GetString("oauthClientSecret")
		if oauthClientSecret == "" {
			return nil, fmt.Errorf("missing contentful oauth secret key")
		}

		oauthClientScopes := v.GetStringSlice("oauthClientScopes")
		if oauthClientScopes == nil {
			oauthClientScopes = []string{}
		}

		c.OAuthTokenURL = oauthTokenUrl
		c.OAuthClientID = oauthClientId
		c.OAuthClientSecret = oauthClientSecret
		c.OAuthScopes = oauthClientScopes
	}

	return c, nil
}

// Export reads the complete content model and content of a space, in
// API return order, one sequential request per collection. When
// params.DownloadAssets is set, every asset file is also fetched into
// the assets directory under params.ExportDir.
func (c *Client) Export(params ExportParams) (*ExportBundle, error) {
	if params.SpaceID == "" {
		return nil, fmt.Errorf("missing space id")
	}

	environmentId := params.EnvironmentID
	if environmentId == "" {
		environmentId = "master"
	}

	client, err := c.createHttpClient()
	if err != nil {
		return nil, err
	}

	spaceUrl := fmt.Sprintf("%s/spaces/%s", c.ApiURL, params.SpaceID)
	envUrl := fmt.Sprintf("%s/environments/%s", spaceUrl, environmentId)

	bundle := &ExportBundle{}

	contentTypes := &contentTypeCollection{}
	if err := c.getJSON(client, envUrl+"/content_types", contentTypes); err != nil {
		return nil, fmt.Errorf("fetch content types failed: %s", err)
	}
	bundle.ContentTypes = contentTypes.Items

	for _, contentType := range bundle.ContentTypes {
		editorInterface := &EditorInterface{}

		url := fmt.Sprintf(
			"%s/content_types/%s/editor_interface",
			envUrl,
			contentType.Sys.ID,
		)
		if err := c.getJSON(client, url, editorInterface); err != nil {
			return nil, fmt.Errorf(
				"fetch editor interface for %s failed: %s",
				contentType.Sys.ID,
				err,
			)
		}

		bundle.EditorInterfaces = append(bundle.EditorInterfaces, *editorInterface)
	}

	entries := &entryCollection{}
	if err := c.getJSON(client, envUrl+"/entries", entries); err != nil {
		return nil, fmt.Errorf("fetch entries failed: %s", err)
	}
	bundle.Entries = entries.Items

	assets := &assetCollection{}
	if err := c.getJSON(client, envUrl+"/assets", assets); err != nil {
		return nil, fmt.Errorf("fetch assets failed: %s", err)
	}
	bundle.Assets = assets.Items

	locales := &localeCollection{}
	if err := c.getJSON(client, envUrl+"/locales", locales); err != nil {
		return nil, fmt.Errorf("fetch locales failed: %s", err)
	}
	bundle.Locales = locales.Items

	tags := &tagCollection{}
	if err := c.getJSON(client, envUrl+"/tags", tags); err != nil {
		return nil, fmt.Errorf("fetch tags failed: %s", err)
	}
	bundle.Tags = tags.Items

	webhooks := &mapCollection{}
	if err := c.getJSON(client, spaceUrl+"/webhook_definitions", webhooks); err != nil {
		return nil, fmt.Errorf("fetch webhooks failed: %s", err)
	}
	bundle.Webhooks = webhooks.Items

	roles := &mapCollection{}
	if err := c.getJSON(client, spaceUrl+"/roles", roles); err != nil {
		return nil, fmt.Errorf("fetch roles failed: %s", err)
	}
	bundle.Roles = roles.Items

	c.Logger.Debugf(
		"exported %d content types, %d entries, %d assets",
		len(bundle.ContentTypes),
		len(bundle.Entries),
		len(bundle.Assets),
	)

	if params.DownloadAssets {
		if err := c.downloadAssets(client, bundle.Assets, params.ExportDir); err != nil {
			return nil, err
		}
	}

	return bundle, nil
}
