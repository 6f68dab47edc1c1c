package analytics

import (
	"strings"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// Dimension names a grouping key. The set is closed: every dimension has
// an extractor in Extract.
type Dimension string

const (
	DimTrack          Dimension = "track"
	DimIdentity       Dimension = "identity_position"
	DimScoreBracket   Dimension = "score_bracket"
	DimFunnelStage    Dimension = "funnel_stage"
	DimChannel        Dimension = "outreach_channel"
	DimCoverLetter    Dimension = "cover_letter"
	DimFollowUpBucket Dimension = "follow_up_count"
)

// AllDimensions lists dimensions in report order.
var AllDimensions = []Dimension{
	DimTrack, DimIdentity, DimScoreBracket, DimFunnelStage,
	DimChannel, DimCoverLetter, DimFollowUpBucket,
}

// Extract returns op's key for dim. ok is false when the record has no
// value for the dimension and should be left out of the grouping.
func Extract(dim Dimension, op *domain.Opportunity) (key string, ok bool) {
	switch dim {
	case DimTrack:
		return nonEmpty(string(op.Track))
	case DimIdentity:
		return nonEmpty(strings.TrimSpace(op.Fit.IdentityPosition))
	case DimScoreBracket:
		if op.Fit.Score == nil {
			return "", false
		}
		return ScoreBracket(*op.Fit.Score), true
	case DimFunnelStage:
		return nonEmpty(string(op.Status))
	case DimChannel:
		return nonEmpty(strings.TrimSpace(op.Outreach.Channel))
	case DimCoverLetter:
		if op.HasCoverLetter() {
			return "with_cover", true
		}
		return "no_cover", true
	case DimFollowUpBucket:
		return FollowUpCountBucket(len(op.FollowUps)), true
	}
	return "", false
}

// ScoreBracket buckets a 0-10 fit score.
func ScoreBracket(score float64) string {
	switch {
	case score >= 9:
		return "9-10"
	case score >= 7:
		return "7-8.9"
	case score >= 5:
		return "5-6.9"
	default:
		return "<5"
	}
}

// FollowUpCountBucket buckets a number of logged follow-ups.
func FollowUpCountBucket(n int) string {
	switch {
	case n <= 0:
		return "0"
	case n == 1:
		return "1"
	case n == 2:
		return "2"
	default:
		return "3+"
	}
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}
