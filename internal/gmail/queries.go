package gmail

import "fmt"

// Search window and sender allow-list for the alert queries. The window is a
// Gmail relative-date filter: everything newer than two days ago.
const (
	startPeriod = "2d"
	endPeriod   = "0d"
	senderList  = "from:(paylah.alert@dbs.com OR ibanking.alert@dbs.com)"
)

// AlertQueries returns the two Gmail search queries covering the known alert
// subjects. Fetch order is query order; a message matching both queries is
// returned by both.
func AlertQueries() []string {
	window := fmt.Sprintf("newer_than:%s older_than:%s", startPeriod, endPeriod)
	return []string{
		fmt.Sprintf("%s %s subject:(card transaction alert)", window, senderList),
		fmt.Sprintf("%s %s subject:(alerts)", window, senderList),
	}
}
