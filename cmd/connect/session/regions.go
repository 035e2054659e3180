package session

import (
	"fmt"

	"github.com/alpacahq/holidaystore/frontend"
)

// regions lists the region codes, the default one starred.
func (c *Client) regions() {
	var resp frontend.ListRegionsResponse
	if err := c.apiClient.ListRegions(&frontend.ListRegionsRequest{}, &resp); err != nil {
		fmt.Fprintf(c.out, "Failed with error: %v\n", err)
		return
	}
	for _, region := range resp.Regions {
		mark := ""
		if region == resp.DefaultRegion {
			mark = " *"
		}
		fmt.Fprintf(c.out, "%s%s\n", region, mark)
	}
}
