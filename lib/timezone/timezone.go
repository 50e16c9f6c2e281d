package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// Pin timestamps to the club's local timezone so fetched_at stamps stay
// comparable no matter where the crawl happens to run.
func Now() time.Time {
	return time.Now().In(Location)
}
