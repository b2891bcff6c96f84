// Package sitechat answers natural language questions using only content
// retrieved from a previously indexed website. It crawls a site, splits its
// pages into chunks, embeds them for semantic search, and answers questions
// through a grounded pipeline that refuses when the retrieved content does
// not plausibly cover the question.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, ollama/).
package sitechat
