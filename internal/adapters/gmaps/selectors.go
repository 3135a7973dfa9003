// Package gmaps reads Google Maps pages through the domain.Page surface.
// Selector constants are grouped here because they rot together: when
// Google ships a new class soup, this file is the blast radius.
package gmaps

const (
	// place page
	selPlaceName   = ".DUwDvf.lfPIob"
	selHeader      = "h1"
	selRatingBlock = ".fontBodyMedium.dmRWX"
	selAvgRating   = `.fontBodyMedium.dmRWX span[aria-hidden="true"]`
	selTotalRev    = `.fontBodyMedium.dmRWX span[aria-label*="ulasan"], .fontBodyMedium.dmRWX span[aria-label*="reviews"]`
	selCategory    = "button.DkEaL"
	selAddress     = ".Io6YTe.fontBodyMedium.kR99db.fdkmkc"

	// tab strip; tabs are matched by label text, not position
	selTab = "div.Gpq6kf.NlVald"

	// about tab
	selAboutDesc = "span.HlvSq"
	selAboutAttr = "ul.ZQ6we li.hpLkke"

	// reviews panel
	selMainPane   = `div[role="main"]`
	selReviewCard = "div[data-review-id]"
	selShowMore   = "button.w8nwRe.kyuRq"
	selReviewText = ".wiI7pd"
	selReviewUser = ".d4r55.fontTitleMedium"
	selReviewStar = ".DU9Pgb span.hCCjke"
	selReviewTime = ".rsqaWe"

	// search feed
	selSearchBox = "input#searchboxinput"
	selFeed      = `div[role="feed"]`
	selPlaceLink = "a.hfpxzc"
)
