// Package catalog holds the built-in component catalog: a fixed,
// hand-authored set of components available to every caller, including
// unauthenticated ones. The catalog is constructed once at process start
// and never mutated, so concurrent reads need no synchronization.
// Built-ins are identified by stable human-readable slugs and are never
// persisted to the database.
package catalog

import (
	"time"

	"siteforge/internal/models"
)

// builtAt stamps all catalog entries with the process start time.
var builtAt = time.Now()

// builtins is the catalog itself, in display order.
var builtins = buildCatalog()

// List returns all built-in components.
func List() []models.Component {
	return builtins
}

// Find returns the built-in component with the given slug, or nil.
func Find(id string) *models.Component {
	for i := range builtins {
		if builtins[i].ID == id {
			return &builtins[i]
		}
	}
	return nil
}

// entry assembles one catalog component with the invariants all
// built-ins share: reserved owner, built-in type, version 1.0.0.
func entry(id, name, description, category string, schema models.PropsSchema) models.Component {
	desc := description
	return models.Component{
		ID:          id,
		UserID:      models.BuiltInUserID,
		Name:        name,
		Description: &desc,
		Category:    category,
		Type:        models.ComponentTypeBuiltIn,
		PropsSchema: schema,
		Version:     "1.0.0",
		CreatedAt:   builtAt,
		UpdatedAt:   builtAt,
	}
}

// exitIntentBase returns the detection props shared by all exit intent
// modals, with a per-component activation delay.
func exitIntentBase(delayMS int) models.PropsSchema {
	return models.PropsSchema{
		"enabled": {
			Type:        "boolean",
			Default:     true,
			Description: "Enable exit intent detection",
		},
		"delay": {
			Type:        "number",
			Default:     delayMS,
			Description: "Delay before activation (milliseconds)",
		},
		"threshold": {
			Type:        "number",
			Default:     20,
			Description: "Mouse threshold for detection (pixels)",
		},
	}
}

// merge copies extra props into base and returns base.
func merge(base, extra models.PropsSchema) models.PropsSchema {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

func buildCatalog() []models.Component {
	return []models.Component{
		entry("exit-intent-discount",
			"Exit Intent - Discount Offer",
			"Last-chance discount modal triggered when users are about to leave",
			"Exit Intent",
			merge(exitIntentBase(3000), models.PropsSchema{
				"aggressive": {
					Type:        "boolean",
					Default:     false,
					Description: "Use aggressive detection (tab switching, etc.)",
				},
				"urgencyText": {
					Type:        "string",
					Default:     "WAIT! Don't Leave Yet",
					Description: "Urgency message",
				},
				"discount": {
					Type:        "string",
					Default:     "20% OFF",
					Description: "Discount amount",
				},
				"subtitle": {
					Type:        "string",
					Default:     "Get an exclusive discount before you go!",
					Description: "Modal subtitle",
				},
				"terms": {
					Type:        "string",
					Default:     "Valid for 24 hours. One-time use only.",
					Description: "Terms and conditions",
				},
				"cookieExpire": {
					Type:        "number",
					Default:     1,
					Description: "Days before showing again",
				},
			})),

		entry("exit-intent-freebie",
			"Exit Intent - Free Resource",
			"Free download offer modal triggered on exit intent",
			"Exit Intent",
			merge(exitIntentBase(5000), models.PropsSchema{
				"title": {
					Type:        "string",
					Default:     "Free Resource",
					Description: "Modal title",
				},
				"subtitle": {
					Type:        "string",
					Default:     "Download our exclusive guide before you leave!",
					Description: "Modal subtitle",
				},
				"benefits": {
					Type:        "string",
					Default:     "Comprehensive guide (PDF)\nActionable tips and strategies\nBonus templates included",
					Description: "List of benefits (one per line)",
					Multiline:   true,
				},
				"cookieExpire": {
					Type:        "number",
					Default:     7,
					Description: "Days before showing again",
				},
			})),

		entry("exit-intent-newsletter",
			"Exit Intent - Newsletter Signup",
			"Newsletter subscription modal triggered on exit intent",
			"Exit Intent",
			merge(exitIntentBase(10000), models.PropsSchema{
				"title": {
					Type:        "string",
					Default:     "Stay Connected",
					Description: "Modal title",
				},
				"subtitle": {
					Type:        "string",
					Default:     "Get weekly tips and insights delivered to your inbox",
					Description: "Modal subtitle",
				},
				"description": {
					Type:        "string",
					Default:     "Join 10,000+ subscribers who get actionable insights every week",
					Description: "Newsletter description",
				},
				"cookieExpire": {
					Type:        "number",
					Default:     30,
					Description: "Days before showing again",
				},
			})),

		entry("exit-intent-demo",
			"Exit Intent - Demo Request",
			"Quick demo scheduling modal triggered on exit intent",
			"Exit Intent",
			merge(exitIntentBase(7000), models.PropsSchema{
				"title": {
					Type:        "string",
					Default:     "Quick Demo?",
					Description: "Modal title",
				},
				"subtitle": {
					Type:        "string",
					Default:     "See how it works in just 5 minutes",
					Description: "Modal subtitle",
				},
				"demoPoints": {
					Type:        "string",
					Default:     "Live product walkthrough\nKey features demonstration\nQ&A with product expert",
					Description: "Demo highlights (one per line)",
					Multiline:   true,
				},
				"cookieExpire": {
					Type:        "number",
					Default:     3,
					Description: "Days before showing again",
				},
			})),

		entry("exit-intent-survey",
			"Exit Intent - Feedback Survey",
			"Quick feedback survey modal triggered on exit intent",
			"Exit Intent",
			merge(exitIntentBase(2000), models.PropsSchema{
				"title": {
					Type:        "string",
					Default:     "Quick Question",
					Description: "Modal title",
				},
				"subtitle": {
					Type:        "string",
					Default:     "Help us improve - what made you want to leave?",
					Description: "Modal subtitle",
				},
				"options": {
					Type:        "string",
					Default:     "Too expensive\nNot what I was looking for\nNeed to think about it\nFound a better alternative\nJust browsing",
					Description: "Survey options (one per line)",
					Multiline:   true,
				},
				"cookieExpire": {
					Type:        "number",
					Default:     7,
					Description: "Days before showing again",
				},
			})),

		entry("exit-intent-social",
			"Exit Intent - Social Follow",
			"Social media follow modal triggered on exit intent",
			"Exit Intent",
			merge(exitIntentBase(15000), models.PropsSchema{
				"title": {
					Type:        "string",
					Default:     "Follow Us",
					Description: "Modal title",
				},
				"subtitle": {
					Type:        "string",
					Default:     "Stay updated with our latest content and offers",
					Description: "Modal subtitle",
				},
				"facebookUrl": {
					Type:        "string",
					Default:     "https://facebook.com/yourpage",
					Description: "Facebook page URL",
				},
				"twitterUrl": {
					Type:        "string",
					Default:     "https://twitter.com/yourhandle",
					Description: "Twitter profile URL",
				},
				"linkedinUrl": {
					Type:        "string",
					Default:     "https://linkedin.com/company/yourcompany",
					Description: "LinkedIn page URL",
				},
				"instagramUrl": {
					Type:        "string",
					Default:     "https://instagram.com/yourhandle",
					Description: "Instagram profile URL",
				},
				"cookieExpire": {
					Type:        "number",
					Default:     14,
					Description: "Days before showing again",
				},
			})),

		entry("exit-intent-ecommerce-funnel",
			"Exit Intent - E-commerce Funnel",
			"Complete exit intent funnel for e-commerce sites",
			"Exit Intent",
			models.PropsSchema{
				"primaryOffer": {
					Type:        "select",
					Options:     []string{"discount", "free-shipping", "bundle"},
					Default:     "discount",
					Description: "Primary exit offer type",
				},
				"discountAmount": {
					Type:        "string",
					Default:     "15%",
					Description: "Discount percentage or amount",
				},
				"minimumOrder": {
					Type:        "string",
					Default:     "$50",
					Description: "Minimum order for offer",
				},
				"urgencyTimer": {
					Type:        "boolean",
					Default:     true,
					Description: "Show countdown timer",
				},
				"socialProof": {
					Type:        "string",
					Default:     "Join 25,000+ happy customers",
					Description: "Social proof message",
				},
			}),

		entry("exit-intent-saas-funnel",
			"Exit Intent - SaaS Funnel",
			"Complete exit intent funnel for SaaS products",
			"Exit Intent",
			models.PropsSchema{
				"primaryOffer": {
					Type:        "select",
					Options:     []string{"extended-trial", "demo", "free-tier"},
					Default:     "extended-trial",
					Description: "Primary exit offer type",
				},
				"trialExtension": {
					Type:        "string",
					Default:     "30 days",
					Description: "Extended trial duration",
				},
				"demoLength": {
					Type:        "string",
					Default:     "15 minutes",
					Description: "Demo duration",
				},
				"valueProposition": {
					Type:        "string",
					Default:     "See why 10,000+ teams choose us",
					Description: "Main value proposition",
				},
				"riskReversal": {
					Type:        "string",
					Default:     "No credit card required • Cancel anytime",
					Description: "Risk reversal message",
				},
			}),

		entry("exit-intent-lead-gen-funnel",
			"Exit Intent - Lead Generation Funnel",
			"Complete exit intent funnel for lead generation",
			"Exit Intent",
			models.PropsSchema{
				"primaryOffer": {
					Type:        "select",
					Options:     []string{"ebook", "webinar", "consultation", "checklist"},
					Default:     "ebook",
					Description: "Primary lead magnet type",
				},
				"leadMagnetTitle": {
					Type:        "string",
					Default:     "Ultimate Guide to [Your Topic]",
					Description: "Lead magnet title",
				},
				"leadMagnetDescription": {
					Type:        "string",
					Default:     "Get the complete guide that helped 5,000+ professionals",
					Description: "Lead magnet description",
				},
				"benefits": {
					Type:        "string",
					Default:     "Step-by-step strategies\nReal-world examples\nActionable templates\nBonus resources",
					Description: "Lead magnet benefits (one per line)",
					Multiline:   true,
				},
				"socialProof": {
					Type:        "string",
					Default:     "Downloaded by 5,000+ professionals",
					Description: "Social proof for lead magnet",
				},
			}),

		entry("hero-classic",
			"Hero Section - Classic",
			"Traditional centered hero with title, subtitle, and CTA button",
			"Heroes",
			models.PropsSchema{
				"title": {
					Type:        "string",
					Default:     "Transform Your Business Today",
					Description: "Main hero title",
					Required:    true,
				},
				"subtitle": {
					Type:        "string",
					Default:     "Discover powerful solutions that drive growth and success for your company",
					Description: "Supporting subtitle text",
					Multiline:   true,
				},
				"buttonText": {
					Type:        "string",
					Default:     "Get Started Free",
					Description: "Primary CTA button text",
				},
				"buttonLink": {
					Type:        "string",
					Default:     "#signup",
					Description: "Primary CTA button link",
				},
				"secondaryButtonText": {
					Type:        "string",
					Default:     "",
					Description: "Secondary button text (optional)",
				},
				"secondaryButtonLink": {
					Type:        "string",
					Default:     "#learn-more",
					Description: "Secondary button link",
				},
				"backgroundImage": {
					Type:        "image",
					Default:     "",
					Description: "Background image (optional)",
				},
				"backgroundColor": {
					Type:        "color",
					Default:     "#1f2937",
					Description: "Background color",
				},
				"textColor": {
					Type:        "color",
					Default:     "#ffffff",
					Description: "Text color",
				},
				"textAlign": {
					Type:        "select",
					Options:     []string{"left", "center", "right"},
					Default:     "center",
					Description: "Text alignment",
				},
			}),

		entry("text-block",
			"Text Block",
			"Simple text content with rich formatting options",
			"Content",
			models.PropsSchema{
				"text": {
					Type:        "string",
					Default:     "Your text here",
					Description: "The text content to display",
					Multiline:   true,
					Required:    true,
				},
				"fontSize": {
					Type:        "select",
					Options:     []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl"},
					Default:     "base",
					Description: "Font size of the text",
				},
				"textAlign": {
					Type:        "select",
					Options:     []string{"left", "center", "right", "justify"},
					Default:     "left",
					Description: "Text alignment",
				},
				"color": {
					Type:        "color",
					Default:     "#000000",
					Description: "Text color",
				},
			}),

		entry("heading",
			"Heading",
			"Heading text with different levels (H1-H6)",
			"Content",
			models.PropsSchema{
				"text": {
					Type:        "string",
					Default:     "Your heading here",
					Description: "Heading text",
					Required:    true,
				},
				"level": {
					Type:        "select",
					Options:     []string{"h1", "h2", "h3", "h4", "h5", "h6"},
					Default:     "h2",
					Description: "Heading level",
				},
				"textAlign": {
					Type:        "select",
					Options:     []string{"left", "center", "right"},
					Default:     "left",
					Description: "Text alignment",
				},
				"color": {
					Type:        "color",
					Default:     "#000000",
					Description: "Text color",
				},
			}),
	}
}
