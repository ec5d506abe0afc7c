// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import "regexp"

// Risk indicator pattern tables, matched case-insensitively against user
// messages. The tables mix English, Swahili, and Sheng registers because
// real conversations do too; there is no translation step before matching.
//
// Word boundaries keep short Swahili stems from firing inside unrelated
// words.

var highRiskPatterns = []*regexp.Regexp{
	// Immediate danger
	regexp.MustCompile(`(?i)\b(going to kill|will kill|wants to kill)\b`),
	regexp.MustCompile(`(?i)\b(hurt(ing)? me|hitting me|beat(ing)? me)\b`),
	regexp.MustCompile(`(?i)\b(locked in|can't leave|trapped)\b`),
	regexp.MustCompile(`(?i)\b(weapon|gun|knife|panga)\b`),
	regexp.MustCompile(`(?i)\b(right now|happening now|as we speak)\b`),
	// Threats
	regexp.MustCompile(`(?i)\b(threatened to|he said he will|she said she will)\b`),
	regexp.MustCompile(`(?i)\b(scared for my life|fear for my life)\b`),
	// Swahili / Sheng
	regexp.MustCompile(`(?i)\b(ananiua|ataniua|amenipiga|ananipiga)\b`),
	regexp.MustCompile(`(?i)\b(nimefungwa|siwezi toka)\b`),
}

var mediumRiskPatterns = []*regexp.Regexp{
	// Control indicators
	regexp.MustCompile(`(?i)\b(controls me|won't let me|doesn't allow)\b`),
	regexp.MustCompile(`(?i)\b(takes my money|hides my phone)\b`),
	regexp.MustCompile(`(?i)\b(isolate|no friends|can't see family)\b`),
	// Fear
	regexp.MustCompile(`(?i)\b(afraid|scared|terrified|frightened)\b`),
	regexp.MustCompile(`(?i)\b(what if he|what if she|worried he will)\b`),
	// Past incidents
	regexp.MustCompile(`(?i)\b(happened before|not the first time|again)\b`),
	regexp.MustCompile(`(?i)\b(bruises|marks|injuries)\b`),
	// Swahili / Sheng
	regexp.MustCompile(`(?i)\b(naogopa|ninaogopa|nimesikia hofu)\b`),
	regexp.MustCompile(`(?i)\b(ananidhibiti|haniniruhusu)\b`),
	regexp.MustCompile(`(?i)\b(ilifanyika tena|si mara ya kwanza)\b`),
}

var lowRiskPatterns = []*regexp.Regexp{
	// General concern
	regexp.MustCompile(`(?i)\b(confused|unsure|don't know what to do)\b`),
	regexp.MustCompile(`(?i)\b(worried about|concerned about)\b`),
	regexp.MustCompile(`(?i)\b(something wrong|not right)\b`),
	// Information seeking
	regexp.MustCompile(`(?i)\b(what should I|how do I|where can I)\b`),
	regexp.MustCompile(`(?i)\b(need advice|need help understanding)\b`),
}
