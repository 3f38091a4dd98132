package nextjs

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/alexberriman/nextlens/internal/logging"
)

// Candidate files are probed in order; the first existing one wins.
var (
	middlewareCandidates = []string{
		"middleware.ts",
		"middleware.js",
		filepath.Join("src", "middleware.ts"),
		filepath.Join("src", "middleware.js"),
	}

	configCandidates = []string{
		"next.config.js",
		"next.config.mjs",
		"next.config.ts",
	}
)

// Matcher extraction accepts either a bracketed list of string literals
// or a lone string literal. These are textual heuristics, not grammar
// parsing; content that matches neither shape degrades to "no matcher".
var (
	matcherListRe   = regexp.MustCompile(`matcher\s*:\s*\[([^\]]*)\]`)
	matcherStringRe = regexp.MustCompile(`matcher\s*:\s*['"]([^'"]+)['"]`)
	stringLiteralRe = regexp.MustCompile(`['"]([^'"]+)['"]`)
)

// Rewrite/redirect extraction locates the returned array literal of the
// async config function and pulls known fields out of each top-level
// object literal.
var (
	rewritesFnRe  = regexp.MustCompile(`(?s)async\s+rewrites\s*\(\s*\)\s*\{.*?return\s*\[(.*?)\];?`)
	redirectsFnRe = regexp.MustCompile(`(?s)async\s+redirects\s*\(\s*\)\s*\{.*?return\s*\[(.*?)\];?`)
	objectRe      = regexp.MustCompile(`(?s)\{[^{}]*\}`)

	sourceFieldRe      = regexp.MustCompile(`source\s*:\s*['"]([^'"]+)['"]`)
	destinationFieldRe = regexp.MustCompile(`destination\s*:\s*['"]([^'"]+)['"]`)
	permanentFieldRe   = regexp.MustCompile(`permanent\s*:\s*(true|false)`)
	statusCodeFieldRe  = regexp.MustCompile(`statusCode\s*:\s*(\d+)`)
)

// FindMiddleware probes the middleware candidate paths under root and
// lexically extracts the matcher configuration from the first existing
// file. A project without middleware yields Exists=false, not an error.
func FindMiddleware(root string, logger *logging.Logger) MiddlewareInfo {
	for _, candidate := range middlewareCandidates {
		path := filepath.Join(root, candidate)
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Debug("middleware candidate unreadable", map[string]any{
					"path":  path,
					"error": err.Error(),
				})
			}
			continue
		}

		info := MiddlewareInfo{
			Exists:   true,
			FilePath: path,
			Matcher:  ParseMatcher(string(content)),
		}
		logger.Info("middleware found", map[string]any{
			"path":     path,
			"matchers": len(info.Matcher),
		})
		return info
	}

	logger.Debug("no middleware file found", map[string]any{"root": root})
	return MiddlewareInfo{}
}

// ParseMatcher extracts the value bound to a matcher configuration
// property. A lone string literal is normalized into a one-element
// list.
func ParseMatcher(content string) []string {
	if m := matcherListRe.FindStringSubmatch(content); m != nil {
		var matchers []string
		for _, lit := range stringLiteralRe.FindAllStringSubmatch(m[1], -1) {
			matchers = append(matchers, lit[1])
		}
		return matchers
	}

	if m := matcherStringRe.FindStringSubmatch(content); m != nil {
		return []string{m[1]}
	}

	return nil
}

// FindConfig probes the config candidate paths under root and returns
// the first existing file's path and content.
func FindConfig(root string, logger *logging.Logger) (string, string, bool) {
	for _, candidate := range configCandidates {
		path := filepath.Join(root, candidate)
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Debug("config candidate unreadable", map[string]any{
					"path":  path,
					"error": err.Error(),
				})
			}
			continue
		}
		return path, string(content), true
	}
	return "", "", false
}

// ParseRewrites extracts rewrite rules from config content, in
// declaration order. Content without a recognizable rewrites() function
// yields an empty list.
func ParseRewrites(content string) []RewriteRule {
	m := rewritesFnRe.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	var rules []RewriteRule
	for _, obj := range objectRe.FindAllString(m[1], -1) {
		source := sourceFieldRe.FindStringSubmatch(obj)
		destination := destinationFieldRe.FindStringSubmatch(obj)
		if source == nil || destination == nil {
			continue
		}
		rules = append(rules, RewriteRule{
			Source:      source[1],
			Destination: destination[1],
		})
	}
	return rules
}

// ParseRedirects extracts redirect rules from config content, in
// declaration order.
func ParseRedirects(content string) []RedirectRule {
	m := redirectsFnRe.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	var rules []RedirectRule
	for _, obj := range objectRe.FindAllString(m[1], -1) {
		source := sourceFieldRe.FindStringSubmatch(obj)
		destination := destinationFieldRe.FindStringSubmatch(obj)
		if source == nil || destination == nil {
			continue
		}

		rule := RedirectRule{
			Source:      source[1],
			Destination: destination[1],
		}
		if perm := permanentFieldRe.FindStringSubmatch(obj); perm != nil {
			rule.Permanent = perm[1] == "true"
		}
		if code := statusCodeFieldRe.FindStringSubmatch(obj); code != nil {
			if n, err := strconv.Atoi(code[1]); err == nil {
				rule.StatusCode = n
			}
		}
		rules = append(rules, rule)
	}
	return rules
}

// AnalyzeConfig probes for a project config file and extracts its
// rewrite and redirect rules. Absence of a config file yields empty
// lists, not an error.
func AnalyzeConfig(root string, logger *logging.Logger) ([]RewriteRule, []RedirectRule) {
	path, content, ok := FindConfig(root, logger)
	if !ok {
		logger.Debug("no config file found", map[string]any{"root": root})
		return nil, nil
	}

	rewrites := ParseRewrites(content)
	redirects := ParseRedirects(content)
	logger.Info("config parsed", map[string]any{
		"path":      path,
		"rewrites":  len(rewrites),
		"redirects": len(redirects),
	})
	return rewrites, redirects
}
