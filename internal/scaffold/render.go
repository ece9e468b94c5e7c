package scaffold

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the format of the {DATE} placeholder.
const DateLayout = "2006-01-02"

// DefaultBlueprint is used when the project has no blueprint file.
const DefaultBlueprint = `---
title: "{TITLE}"
description: "{DESCRIPTION}"
level: "{LEVEL}"
duration: "{DURATION}"
tags: [{TAGS}]
status: {STATUS}
lastUpdated: {DATE}
sidebar:
  label: "{SIDEBAR_LABEL}"
  order: {ORDER}
---

## Objectifs

## Prérequis

## Étapes
`

// Render fills the blueprint placeholders for a normalized activity.
func Render(blueprint string, a *Activity, date time.Time) string {
	order := DefaultOrder
	if a.Order != nil {
		order = *a.Order
	}

	quoted := make([]string, 0, len(a.Tags))
	for _, tag := range a.Tags {
		quoted = append(quoted, strconv.Quote(strings.TrimSpace(tag)))
	}

	r := strings.NewReplacer(
		"{TITLE}", a.Title,
		"{DESCRIPTION}", a.Description,
		"{LEVEL}", a.Level,
		"{DURATION}", a.Duration,
		"{TAGS}", strings.Join(quoted, ", "),
		"{STATUS}", a.Status,
		"{ORDER}", strconv.Itoa(order),
		"{SIDEBAR_LABEL}", a.SidebarLabel,
		"{DATE}", date.Format(DateLayout),
	)
	return r.Replace(blueprint)
}
