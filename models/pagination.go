// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// DefaultPageSize is the page size used until the user picks another one.
const DefaultPageSize = 10

// PageSizes lists the page sizes the user can choose from.
var PageSizes = []int{10, 20, 50}

// Pagination is the cursor over the remote session list.
//
// PageIndex is 1-based and never drops below 1. Total is the count reported
// by the server for the last completed list call.
type Pagination struct {
	PageIndex int
	PageSize  int
	Total     int
}

// NewPagination returns the cursor at the first page. A pageSize outside
// [PageSizes] falls back to [DefaultPageSize].
func NewPagination(pageSize int) Pagination {
	if !IsValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}
	return Pagination{PageIndex: 1, PageSize: pageSize}
}

// IsValidPageSize reports whether size is one of [PageSizes].
func IsValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}

// WithPage moves the cursor to pageIndex keeping the page size.
// Values below 1 are clamped to 1.
func (p Pagination) WithPage(pageIndex int) Pagination {
	p.PageIndex = max(pageIndex, 1)
	return p
}

// WithPageSize changes the page size and rewinds to the first page.
// Sizes outside [PageSizes] leave the cursor untouched.
func (p Pagination) WithPageSize(size int) Pagination {
	if !IsValidPageSize(size) {
		return p
	}
	p.PageSize = size
	p.PageIndex = 1
	return p
}

// WithTotal records the server-reported total; negative values become 0.
func (p Pagination) WithTotal(total int) Pagination {
	p.Total = max(total, 0)
	return p
}

// PageCount returns the number of pages for the current total, at least 1.
func (p Pagination) PageCount() int {
	if p.PageSize <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// NextPageSize cycles through [PageSizes] in the given direction.
func (p Pagination) NextPageSize(step int) int {
	i := slices.Index(PageSizes, p.PageSize)
	if i < 0 {
		return DefaultPageSize
	}
	i = (i + step + len(PageSizes)) % len(PageSizes)
	return PageSizes[i]
}
