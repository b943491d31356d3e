package parser

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"

	"github.com/seoscore/seoscore/internal/service/seo"
)

// PageData contains the fields extracted from a live page that the
// scoring engine needs.
type PageData struct {
	URL             string         `json:"url"`
	Title           string         `json:"title"`
	MetaDescription string         `json:"meta_description"`
	ContentHTML     string         `json:"content_html"`
	Images          []seo.Image    `json:"images"`
	Social          seo.SocialData `json:"social_data"`
	StatusCode      int            `json:"status_code"`
	LoadTime        time.Duration  `json:"load_time"`
}

// ToAnalysisInput converts the fetched page into scoring input.
func (p *PageData) ToAnalysisInput(focusKeyword string) seo.AnalysisInput {
	return seo.AnalysisInput{
		Title:           p.Title,
		Content:         p.ContentHTML,
		MetaDescription: p.MetaDescription,
		URL:             p.URL,
		FocusKeyword:    focusKeyword,
		Images:          p.Images,
		Social:          p.Social,
	}
}

// FetchPage downloads a page and extracts the fields needed for
// scoring
func FetchPage(targetURL string, timeout time.Duration) (*PageData, error) {
	if !strings.HasPrefix(targetURL, "http://") && !strings.HasPrefix(targetURL, "https://") {
		targetURL = "https://" + targetURL
	}

	parsedURL, err := url.Parse(targetURL)
	if err != nil {
		return nil, err
	}

	page := &PageData{URL: targetURL}

	c := colly.NewCollector(
		colly.AllowedDomains(parsedURL.Hostname()),
		colly.MaxDepth(1),
		colly.Async(true),
	)

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 2,
		Delay:       1 * time.Second,
	})

	extensions.RandomUserAgent(c)
	c.SetRequestTimeout(timeout)

	startTime := time.Now()

	// On every <img> element
	c.OnHTML("img[src]", func(e *colly.HTMLElement) {
		page.Images = append(page.Images, seo.Image{
			Alt:   e.Attr("alt"),
			Title: e.Attr("title"),
		})
	})

	// Extract title, meta tags, and the body markup
	c.OnHTML("html", func(e *colly.HTMLElement) {
		page.Title = strings.TrimSpace(e.ChildText("title"))

		e.ForEach("meta", func(_ int, el *colly.HTMLElement) {
			content := el.Attr("content")
			if content == "" {
				return
			}
			switch {
			case el.Attr("name") == "description":
				page.MetaDescription = content
			case el.Attr("property") == "og:title":
				page.Social.Title = content
			case el.Attr("property") == "og:description":
				page.Social.Description = content
			case el.Attr("property") == "og:image":
				page.Social.Image = content
			}
		})

		body := e.DOM.Find("body")
		body.Find("script, style, noscript").Remove()
		if html, err := bodyHTML(body); err == nil {
			page.ContentHTML = html
		}
	})

	c.OnResponse(func(r *colly.Response) {
		page.StatusCode = r.StatusCode
		page.LoadTime = time.Since(startTime)
	})

	c.OnError(func(r *colly.Response, err error) {
		page.StatusCode = r.StatusCode
		if r.StatusCode == 0 {
			page.StatusCode = http.StatusInternalServerError
		}
	})

	if err := c.Visit(targetURL); err != nil {
		return page, err
	}

	c.Wait()

	if page.StatusCode >= 400 {
		return page, fmt.Errorf("page returned status %d", page.StatusCode)
	}
	if page.ContentHTML == "" {
		return page, fmt.Errorf("no content extracted from %s", targetURL)
	}

	return page, nil
}

// bodyHTML returns the inner markup of the body selection.
func bodyHTML(body *goquery.Selection) (string, error) {
	if body.Length() == 0 {
		return "", fmt.Errorf("no body element")
	}
	return body.Html()
}
