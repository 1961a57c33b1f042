package main

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestOrderListing(t *testing.T) {
	cfg := &OrderConfig{MainConfig: &MainConfig{Trim: true}}
	listing, err := orderListing(cfg, "testdata/order.xml", false)
	require.NoError(t, err)
	goldie.New(t).Assert(t, "order", []byte(listing))
}
