// Package arlington scrapes team roster pages from the Arlington Hockey
// Club website. It produces raw roster records; season normalization and
// all cross-team aggregation happen downstream.
package arlington

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"rostersite/lib/restyutil"
	"rostersite/lib/roster"
	"rostersite/lib/telemetry"
	"rostersite/lib/textutil"
	"rostersite/lib/timezone"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://www.arlingtonice.com"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	client.SetHeader("accept-language", "en-US,en;q=0.9")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "rostersite.lib.scrapers.arlington.http")
	restyutil.CaptureClient(client, captureOutput)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// FetchTeamRoster retrieves and parses the roster page for one team id,
// returning one record per extracted player.
func (c *Client) FetchTeamRoster(ctx context.Context, teamID int64) ([]roster.Record, error) {
	ctx, span := tracer.Start(ctx, "FetchTeamRoster")
	defer span.End()
	span.SetAttributes(attribute.Int64("team_id", teamID))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/team/%d/roster", teamID))
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("team %d roster: unexpected status %d", teamID, res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, err
	}

	fetchedAt := timezone.Now().Format(time.RFC3339)
	records, err := parseRosterPage(ctx, teamID, doc, fetchedAt)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("players", len(records)))
	return records, nil
}

func parseRosterPage(ctx context.Context, teamID int64, doc *goquery.Document, fetchedAt string) ([]roster.Record, error) {
	header := doc.Find("div.team_header")
	if header.Length() == 0 {
		return nil, fmt.Errorf("team %d roster: no team header found", teamID)
	}
	season := textutil.CleanText(header.Find("span.label.label-org").First().Text())
	teamName := textutil.CleanText(header.Find("h1").First().Text())

	var records []roster.Record
	doc.Find("div.participant.roster").Each(func(_ int, participant *goquery.Selection) {
		name, ok := extractParticipantName(participant)
		if !ok {
			slog.WarnContext(ctx, "could not extract player name, skipping participant",
				"team_id", teamID)
			return
		}
		records = append(records, roster.Record{
			TeamID:     teamID,
			Season:     season,
			TeamName:   teamName,
			PlayerName: name,
			FetchedAt:  fetchedAt,
		})
	})

	return records, nil
}
