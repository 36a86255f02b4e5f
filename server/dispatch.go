package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// queryBranch is one stage of a query-parameter dispatch: a handler chain
// that runs when its query parameter is present on the request. allowEmpty
// branches match on mere presence ("?author="); the rest require a value.
type queryBranch struct {
	param      string
	allowEmpty bool
	handlers   gin.HandlersChain
}

// dispatchByQuery returns a handler that evaluates branches in order and runs
// the first one whose query parameter matches. When none matches, the
// fallback chain runs; with a nil fallback the request fails with 400. This
// is how a single GET path serves several filtered views of a collection.
func dispatchByQuery(fallback gin.HandlersChain, branches ...queryBranch) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, branch := range branches {
			value, present := c.GetQuery(branch.param)
			if present && (branch.allowEmpty || value != "") {
				runChain(c, branch.handlers)
				return
			}
		}
		if fallback != nil {
			runChain(c, fallback)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A query parameter must be specified.",
		})
	}
}

// runChain executes handlers in order, short-circuiting once one aborts.
func runChain(c *gin.Context, chain gin.HandlersChain) {
	for _, handler := range chain {
		handler(c)
		if c.IsAborted() {
			return
		}
	}
}
