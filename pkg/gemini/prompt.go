package gemini

import "strings"

// ScreenshotOCRPrompt asks the model to transcribe an itinerary screenshot.
const ScreenshotOCRPrompt = `You read screenshots of travel plans (notes apps, chat messages, booking pages, maps lists).

Transcribe the itinerary visible in the image as plain text, one place per line.
Keep day headings (e.g. "Day 1", "DAY 2 6/8 WED") on their own lines, in the order they appear.
Keep times that are written next to a place (e.g. "9am coffee").
Keep place names in their original language and spelling. Do not translate or invent places.
Ignore app chrome, battery/clock indicators, buttons and advertisements.

Return ONLY a JSON object, no markdown:
{"text": "<transcribed itinerary>", "destination": "<city or region if clearly stated, otherwise null>"}`

// URLExtractionPrompt asks the model to pull an itinerary out of web page text.
const URLExtractionPrompt = `You extract travel itineraries from web page text (blog posts, travel guides, booking confirmations).

Rewrite the itinerary as plain text with one "Day N" heading per day followed by one place per line.
Only list concrete, visitable places (sights, restaurants, cafes, hotels, neighbourhoods).
If the page has no day structure, list the places under a single "Day 1" heading.

Return ONLY a JSON object, no markdown:
{"destination": "<main city or region, or null>", "durationDays": <number of days or null>, "itineraryText": "<the itinerary>"}`

// BuildURLExtractionPrompt appends the page text to URLExtractionPrompt.
func BuildURLExtractionPrompt(pageURL, pageText string) string {
	var b strings.Builder
	b.WriteString(URLExtractionPrompt)
	b.WriteString("\n\nSOURCE URL:\n")
	b.WriteString(pageURL)
	b.WriteString("\n\nPAGE TEXT:\n")
	b.WriteString(pageText)
	return b.String()
}
