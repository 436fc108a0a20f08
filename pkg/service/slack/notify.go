package slack

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/slack-go/slack"
)

// maxSectionBytes is Slack's size limit for a section text object.
const maxSectionBytes = 3000

// Notifier posts new-report notifications to a Slack channel
type Notifier struct {
	api       *slack.Client
	channelID string
}

var _ interfaces.Notifier = &Notifier{}

// New creates a Slack notifier with the provided bot token and channel ID
func New(token, channelID string) (*Notifier, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
	}, nil
}

// NotifyAssessment posts a Block Kit message describing a newly submitted report
func (n *Notifier) NotifyAssessment(ctx context.Context, assessment *model.RiskAssessment) error {
	blocks := buildAssessmentBlocks(assessment)
	fallback := fmt.Sprintf("New AI risk report: %s (%s)", assessment.AITool, assessment.Severity)

	_, _, err := n.api.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fallback, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post Slack notification",
			goerr.V("channelID", n.channelID),
			goerr.V("assessmentID", assessment.ID))
	}

	return nil
}

func buildAssessmentBlocks(a *model.RiskAssessment) []slack.Block {
	headline := "New AI risk report"
	if a.Severity == types.SeverityCritical {
		headline = "Critical AI risk report"
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, headline, true, false),
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, "*Tool*\n"+a.AITool, false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*Risk type*\n"+a.RiskType.String(), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*Severity*\n"+a.Severity.String(), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*Report requested*\n"+strconv.FormatBool(a.ReportRequested), false, false),
		}, nil),
	}

	if a.Description != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, truncateToMaxBytes(a.Description, maxSectionBytes), false, false),
			nil, nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, "Report ID: "+a.ID.String(), false, false),
	))

	return blocks
}

// truncateToMaxBytes cuts s to at most maxBytes without splitting a UTF-8
// sequence.
func truncateToMaxBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
