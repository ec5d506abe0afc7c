// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package service

import "regexp"

// Guardrail pattern tables. Each table covers one policy category; a
// response is checked against all of them and collects at most one
// violation tag per category.

var legalAdvicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(you should sue|file a lawsuit|press charges|take legal action)\b`),
	regexp.MustCompile(`(?i)\b(legally you can|the law says|according to law)\b`),
	regexp.MustCompile(`(?i)\b(get a lawyer|hire an attorney|legal rights)\b`),
	regexp.MustCompile(`(?i)\b(court order|restraining order|you should report to police)\b`),
}

var medicalAdvicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(you should take|take this medication|stop taking)\b`),
	regexp.MustCompile(`(?i)\b(diagnosis|diagnose|you have [a-z]+ disorder)\b`),
	regexp.MustCompile(`(?i)\b(treatment plan|medical treatment|go to the doctor)\b`),
	regexp.MustCompile(`(?i)\b(symptoms indicate|based on symptoms)\b`),
}

var victimBlamingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(why did you|why didn't you|you should have)\b`),
	regexp.MustCompile(`(?i)\b(your fault|you caused|you let)\b`),
	regexp.MustCompile(`(?i)\b(you shouldn't have|you made him|you made her)\b`),
	regexp.MustCompile(`(?i)\b(what were you wearing|what did you do to)\b`),
}

var urgencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(you must|you have to|you need to immediately)\b`),
	regexp.MustCompile(`(?i)\b(right now|immediately|don't wait|urgent)\b`),
	regexp.MustCompile(`(?i)\b(call now|go now|leave now)\b`),
}

// fallbackSet holds the canned replies for one language. Replies are fixed
// text reviewed by the support team, never generated.
type fallbackSet struct {
	Legal         string
	Medical       string
	VictimBlaming string
	Urgency       string
	General       string
}

var safeFallbacks = map[string]fallbackSet{
	"en": {
		Legal:         "I hear that you're thinking about your options. For specific legal guidance, speaking with a professional would give you the clearest picture. Would you like to know about free legal resources available?",
		Medical:       "I understand you're concerned about your health. A healthcare professional would be the best person to guide you on this. Would you like information about where to find support?",
		VictimBlaming: "What happened is not your fault. Many people have been through similar experiences. How are you feeling right now?",
		Urgency:       "Take your time. There's no pressure to make any decisions right now. I'm here to listen whenever you're ready.",
		General:       "I want to make sure I'm being helpful. Could you tell me more about what you're experiencing?",
	},
	"sw": {
		Legal:         "Nasikia unafikiria kuhusu chaguzi zako. Kwa ushauri wa kisheria, kuzungumza na mtaalamu kungesaidia. Ungependa kujua kuhusu rasilimali za kisheria zilizo bure?",
		Medical:       "Naelewa una wasiwasi kuhusu afya yako. Mtaalamu wa afya angekuwa mtu bora kukuongoza. Ungependa habari kuhusu wapi kupata msaada?",
		VictimBlaming: "Kilichotokea si kosa lako. Watu wengi wamepitia uzoefu kama huu. Unajisikiaje sasa?",
		Urgency:       "Chukua wakati wako. Hakuna shinikizo la kufanya maamuzi sasa hivi. Niko hapa kusikiliza wakati wowote uko tayari.",
		General:       "Nataka kuhakikisha ninasaidia. Je, unaweza kunielezea zaidi unachopitia?",
	},
	"sheng": {
		Legal:         "Nasikia una-think kuhusu options zako. Kwa legal advice, ku-talk na professional itakusaidia. Ungependa kujua about free legal resources?",
		Medical:       "Na-understand una concern kuhusu health yako. Healthcare professional angekuwa best person kukuguide. Ungependa info kuhusu where kupata support?",
		VictimBlaming: "Chenye kilitokea si fault yako. Watu wengi wamepitia similar experiences. Unajiskia aje saa hii?",
		Urgency:       "Chukua time yako. Hakuna pressure ya ku-decide saa hii. Niko hapa kuskia wakati wowote uko ready.",
		General:       "Nataka ku-make sure nina-help. Unaweza nielezea more kuhusu chenye unapitia?",
	},
}

// fallbacksFor returns the reply set for the given language, falling back
// to English for unknown languages.
func fallbacksFor(language string) fallbackSet {
	if set, ok := safeFallbacks[language]; ok {
		return set
	}

	return safeFallbacks["en"]
}
