package game

import "strings"

// Bucket is one of the four coarse position categories that fine-grained
// position labels are mapped into.
type Bucket string

const (
	BucketGoalkeeper Bucket = "goalkeeper"
	BucketDefender   Bucket = "defender"
	BucketMidfielder Bucket = "midfielder"
	BucketForward    Bucket = "forward"
)

// bucketNamesRu maps buckets to their Russian names used in answers.
var bucketNamesRu = map[Bucket]string{
	BucketGoalkeeper: "вратарь",
	BucketDefender:   "защитник",
	BucketMidfielder: "полузащитник",
	BucketForward:    "нападающий",
}

// positionBuckets maps fine-grained position labels (lowercased) to their
// coarse bucket. Covers both the "-er" labels and the raw Transfermarkt
// position names; coarse labels map to themselves for profiles that only
// carry the bucket.
var positionBuckets = map[string]Bucket{
	"goalkeeper": BucketGoalkeeper,

	"centre-back": BucketDefender,
	"full-back":   BucketDefender,
	"left-back":   BucketDefender,
	"right-back":  BucketDefender,
	"wing-back":   BucketDefender,
	"sweeper":     BucketDefender,
	"defender":    BucketDefender,

	"central midfielder":   BucketMidfielder,
	"central midfield":     BucketMidfielder,
	"defensive midfielder": BucketMidfielder,
	"defensive midfield":   BucketMidfielder,
	"attacking midfielder": BucketMidfielder,
	"attacking midfield":   BucketMidfielder,
	"wide midfielder":      BucketMidfielder,
	"left midfield":        BucketMidfielder,
	"right midfield":       BucketMidfielder,
	"midfielder":           BucketMidfielder,

	"striker":        BucketForward,
	"second striker": BucketForward,
	"centre-forward": BucketForward,
	"left winger":    BucketForward,
	"right winger":   BucketForward,
	"forward":        BucketForward,
}

// BucketFor maps a fine-grained position label to its coarse bucket.
// Returns false for unknown or missing labels.
func BucketFor(position string) (Bucket, bool) {
	b, ok := positionBuckets[strings.ToLower(strings.TrimSpace(position))]
	return b, ok
}
