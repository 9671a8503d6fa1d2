package discovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"hive-server/internal/scoring"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

var (
	ErrMissingID     = errors.New("candidate post has no id")
	ErrMissingAuthor = errors.New("candidate post has no author")
	ErrMalformedPost = errors.New("malformed candidate post")
)

// RawPost is a post as returned by a discovery mirror, before validation.
type RawPost map[string]interface{}

// Candidate is a validated post ready for scoring.
type Candidate struct {
	ID             string
	AuthorUsername string
	Text           string
	Metrics        scoring.Metrics
	CreatedAt      time.Time
}

// rawCandidate mirrors the loose shapes returned by mirrors. Counters may sit
// at the top level or under "metrics", and the author under several keys.
type rawCandidate struct {
	ID        string           `mapstructure:"id"`
	TweetID   string           `mapstructure:"tweet_id"`
	Author    string           `mapstructure:"author"`
	Username  string           `mapstructure:"username"`
	Handle    string           `mapstructure:"author_username"`
	Text      string           `mapstructure:"text"`
	Content   string           `mapstructure:"content"`
	Likes     int              `mapstructure:"likes"`
	Retweets  int              `mapstructure:"retweets"`
	Replies   int              `mapstructure:"replies"`
	Quotes    int              `mapstructure:"quotes"`
	Metrics   *scoring.Metrics `mapstructure:"metrics"`
	CreatedAt time.Time        `mapstructure:"created_at"`
}

// ParseCandidate validates raw into a Candidate. Posts without an id or an
// author are rejected; everything downstream works with the strict type.
func ParseCandidate(raw RawPost) (Candidate, error) {
	for _, key := range []string{"id", "tweet_id"} {
		if err := checkPostID(raw[key]); err != nil {
			return Candidate{}, fmt.Errorf("%w: %s: %v", ErrMalformedPost, key, err)
		}
	}

	var rc rawCandidate
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rc,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			unixToTimeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return Candidate{}, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(map[string]interface{}(raw)); err != nil {
		return Candidate{}, fmt.Errorf("%w: %v", ErrMalformedPost, err)
	}

	c := Candidate{
		ID:             strings.TrimSpace(firstNonEmpty(rc.ID, rc.TweetID)),
		AuthorUsername: strings.TrimPrefix(strings.TrimSpace(firstNonEmpty(rc.Handle, rc.Username, rc.Author)), "@"),
		Text:           firstNonEmpty(rc.Text, rc.Content),
		Metrics: scoring.Metrics{
			Likes:    rc.Likes,
			Retweets: rc.Retweets,
			Replies:  rc.Replies,
			Quotes:   rc.Quotes,
		},
		CreatedAt: rc.CreatedAt.UTC(),
	}
	if rc.Metrics != nil {
		c.Metrics = *rc.Metrics
	}

	if c.ID == "" {
		return Candidate{}, ErrMissingID
	}
	if c.AuthorUsername == "" {
		return Candidate{}, ErrMissingAuthor
	}
	return c, nil
}

// checkPostID rejects numeric ids that lost precision in decoding. Exact
// integers arrive as json.Number or int and are kept as their digits.
func checkPostID(v interface{}) error {
	switch id := v.(type) {
	case float32, float64:
		return errors.New("numeric id is not exact")
	case json.Number:
		if _, err := strconv.ParseUint(id.String(), 10, 64); err != nil {
			return fmt.Errorf("id %q is not an integer", id.String())
		}
	}
	return nil
}

// unixToTimeHook accepts created_at as unix seconds.
func unixToTimeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	switch v := data.(type) {
	case json.Number:
		secs, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("invalid unix timestamp %q", v.String())
		}
		return time.Unix(secs, 0).UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case int:
		return time.Unix(int64(v), 0).UTC(), nil
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	}
	return data, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
