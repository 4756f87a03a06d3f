package service

import (
	"strings"

	"github.com/franchisehub/franchisehub-backend/internal/app/model"
)

// FilterAll is the wildcard value for the status and type filters.
const FilterAll = "all"

// InquiryFilterParams is the immutable set of moderation-view filters for a
// single query. Empty or "all" values disable the corresponding predicate.
type InquiryFilterParams struct {
	Search string // case-insensitive substring over name, email, subject
	Status string // inquiry status, or "all"
	Type   string // derived type (franchise/business/general), or "all"
}

// FilterInquiries applies the conjunction of the three predicates over an
// already-fetched list. Pure function; the input slice is not modified.
func FilterInquiries(inquiries []model.Inquiry, params InquiryFilterParams) []model.Inquiry {
	filtered := make([]model.Inquiry, 0, len(inquiries))
	for _, inquiry := range inquiries {
		if !matchesSearch(params.Search, inquiry.Name, inquiry.Email, inquiry.Subject) {
			continue
		}
		if !matchesFilter(params.Status, string(inquiry.Status)) {
			continue
		}
		if !matchesFilter(params.Type, string(inquiry.Type())) {
			continue
		}
		filtered = append(filtered, inquiry)
	}
	return filtered
}

// FilterFranchisesByName narrows the moderation view by a case-insensitive
// name match. Pure function, like FilterInquiries.
func FilterFranchisesByName(franchises []model.Franchise, search string) []model.Franchise {
	if search == "" {
		return franchises
	}
	filtered := make([]model.Franchise, 0, len(franchises))
	for _, franchise := range franchises {
		if matchesSearch(search, franchise.Name) {
			filtered = append(filtered, franchise)
		}
	}
	return filtered
}

// FilterBusinessesByName narrows the moderation view by a case-insensitive
// name match.
func FilterBusinessesByName(businesses []model.Business, search string) []model.Business {
	if search == "" {
		return businesses
	}
	filtered := make([]model.Business, 0, len(businesses))
	for _, business := range businesses {
		if matchesSearch(search, business.Name) {
			filtered = append(filtered, business)
		}
	}
	return filtered
}

// FilterAdvertisementsByTitle narrows the moderation view by a
// case-insensitive title match.
func FilterAdvertisementsByTitle(ads []model.Advertisement, search string) []model.Advertisement {
	if search == "" {
		return ads
	}
	filtered := make([]model.Advertisement, 0, len(ads))
	for _, ad := range ads {
		if matchesSearch(search, ad.Title) {
			filtered = append(filtered, ad)
		}
	}
	return filtered
}

// matchesSearch reports whether the term matches any of the fields,
// case-insensitively. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesFilter reports whether value satisfies an equality filter, where an
// empty filter or "all" matches everything.
func matchesFilter(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}
