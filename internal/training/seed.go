package training

import "encoding/json"

// Seed returns the starter corpus shipped with the agent: real-world
// style reports covering the most commonly filed WCAG failures, so
// retrieval has something to work with before any imports happen.
func Seed() []Example {
	return []Example{
		{
			ID:        "1",
			IssueType: "narrator_blank_announcement",
			WCAG:      "3.2.4",
			OneLiner:  "Narrator announces blank for permission combo boxes",
			Patterns:  patterns(`{"user_impact_keywords":["screen reader","narrator","scan mode","extra focus","navigation"],"test_environment_template":"OS: Windows 11, Browser: Edge, Screen Reader: Narrator, NVDA"}`),
			FullReport: `User Impact:
Screen reader dependent users will be impacted if in scan mode, Narrator takes extra focus on the menu items of 'Permission' combo boxes announces "Blank" due to which user will have to do extra down arrow key navigation and also users will get confused after hearing "Blank" information.

Test Environment:
OS: Windows 11 Version 22H2 (OS Build 22621.1413)
Browser: New Edge (Version 111.0.1661.54 (Official build) (64-bit)
Screen Reader: Narrator, NVDA

Pre-requisite:
1. Go to system settings-> System-> Display->Scale & Layout-> Change the size of text, apps, and other items at 150%(Recommended)-> Display Resolution (1920*1080)
2. Go to browser Settings-> Zoom- 100%

Steps to Reproduce:
1. Turn on Narrator through Ctrl + Windows + Enter key and switch to scan mode through Caps Lock + Spacebar key.
2. Open the application URL on New Edge (Chromium) browser and login with valid credentials.
3. Navigate to the 'Permission' combo box present below 'INVITE PLAYERS' heading on the page through down key and press Enter key to activate it.
4. Now again press the down arrow key to navigate to the next interactive element.
5. Verify if in scan mode, Narrator takes extra focus on the menu items of 'Permission' combobox and announces "Blank" or not.

Actual Result:
In scan mode, Narrator takes extra focus on the menu items of 'Permission' combo boxes and announces "Blank".

Expected Result:
In scan mode, Narrator should take single consolidated focus on menu items of 'Permission' combo boxes and announce proper relevant information.

MAS Reference:
MAS 3.2.4 – Consistent Identification

Please refer to attached video in attachment tab for more information about the bug.`,
		},
		{
			ID:        "2",
			IssueType: "aria_hidden_misuse",
			WCAG:      "1.3.1",
			OneLiner:  "Aria-hidden incorrectly hides important content from screen readers",
			Patterns:  patterns(`{"user_impact_keywords":["screen reader","aria-hidden","focus","miss information"],"test_environment_template":"OS: Windows 11, Browser: Edge, Screen Reader: Narrator, NVDA"}`),
			FullReport: `User Impact:
Screen reader users will be impacted if the aria-hidden="true" attribute is incorrectly defined inside the <div> and <span> tag for heading text due to which users in scan mode focus will not move to those text, so they will miss the information about the text.

Test Environment:
OS: Windows 11 Version 24H2 (OS Build 26100.3775)
Browser: Microsoft Edge Version (136.0.3240.64) (Official build) (64-bit)
Screen Reader: Narrator, NVDA

Pre-requisite:
1. Go to system Settings-> System-> Display-> Scale & Layout-> Change the size of text, apps, and other items at 150%-> Display Resolution (1920*1080)
2. Go to browser Settings-> Zoom-> 100%

Steps to Reproduce:
1. Open the application URL on Microsoft Edge browser.
2. Navigate to the heading text present in the main section.
3. Press F12 to open the developer tool.
4. Verify that Aria-hidden="true" attribute is incorrectly defined inside the <div> and <span> tag for the text or not.

Actual Result:
Aria-hidden="true" attribute is incorrectly defined inside the <div> and <span> tag for the heading text.

Expected Result:
Aria-hidden="true" attribute should be removed from the <div> and <span> tag for the heading text.

MAS Reference:
MAS 1.3.1 – Info and Relationships

Please refer to attached video in attachment tab for more information about the bug.`,
		},
		{
			ID:        "3",
			IssueType: "focus_order_issue",
			WCAG:      "2.4.3",
			OneLiner:  "Tab order skips important interactive elements",
			Patterns:  patterns(`{"user_impact_keywords":["keyboard users","focus order","navigation","interactive elements"],"test_environment_template":"OS: Windows 11, Browser: Chrome, Screen Reader: NVDA"}`),
			FullReport: `User Impact:
Keyboard users will be impacted as the focus order skips important interactive elements like buttons and links, making it difficult to navigate through the page using only the keyboard.

Test Environment:
OS: Windows 11 Version 22H2 (OS Build 22621.1413)
Browser: Chrome Version 120.0.6099.109 (Official build) (64-bit)
Screen Reader: NVDA 2023.3

Pre-requisite:
1. Ensure keyboard navigation is enabled
2. Set browser zoom to 100%

Steps to Reproduce:
1. Open the application URL in Chrome browser
2. Press Tab key to start keyboard navigation
3. Navigate through the page using Tab and Shift+Tab keys
4. Observe the focus order and identify skipped elements
5. Verify that all interactive elements are reachable via keyboard

Actual Result:
Tab order skips several important interactive elements including the "Submit" button and "Contact Us" link, making them inaccessible via keyboard navigation.

Expected Result:
All interactive elements should be reachable via keyboard navigation in a logical tab order that follows the visual layout of the page.

MAS Reference:
MAS 2.4.3 – Focus Order

Please refer to attached video in attachment tab for more information about the bug.`,
		},
		{
			ID:        "4",
			IssueType: "missing_alt_text",
			WCAG:      "1.1.1",
			OneLiner:  "Images lack alternative text descriptions",
			Patterns:  patterns(`{"user_impact_keywords":["screen reader","images","alt text","descriptions"],"test_environment_template":"OS: Windows 11, Browser: Firefox, Screen Reader: JAWS"}`),
			FullReport: `User Impact:
Screen reader users will be impacted as images lack alternative text descriptions, making it impossible for them to understand the content and context of images on the page.

Test Environment:
OS: Windows 11 Version 22H2 (OS Build 22621.1413)
Browser: Firefox Version 121.0 (64-bit)
Screen Reader: JAWS 2023

Pre-requisite:
1. Ensure screen reader is properly configured
2. Set browser zoom to 100%

Steps to Reproduce:
1. Open the application URL in Firefox browser
2. Navigate to images on the page using screen reader
3. Check if images have alt attributes defined
4. Verify that alt text provides meaningful descriptions

Actual Result:
Multiple images on the page lack alt attributes or have empty alt text, making them inaccessible to screen reader users.

Expected Result:
All images should have meaningful alt text that describes the image content and provides context for screen reader users.

MAS Reference:
MAS 1.1.1 – Non-text Content

Please refer to attached video in attachment tab for more information about the bug.`,
		},
		{
			ID:        "5",
			IssueType: "contrast_violation",
			WCAG:      "1.4.3",
			OneLiner:  "Text color contrast ratio below 4.5:1",
			Patterns:  patterns(`{"user_impact_keywords":["low vision","contrast ratio","readability"],"test_environment_template":"OS: Windows 11, Browser: Chrome, Tool: WebAIM Contrast Checker"}`),
			FullReport: `User Impact:
Users with low vision will be impacted as the text color contrast ratio is below the required 4.5:1 ratio, making it difficult to read text content.

Test Environment:
OS: Windows 11 Version 22H2 (OS Build 22621.1413)
Browser: Chrome Version 120.0.6099.109 (Official build) (64-bit)
Accessibility Tool: WebAIM Contrast Checker

Pre-requisite:
1. Use a contrast checking tool
2. Verify against WCAG AA standards

Steps to Reproduce:
1. Open the application URL in Chrome browser
2. Identify text elements with poor contrast
3. Use a contrast checking tool to measure ratios
4. Verify contrast ratios against WCAG standards

Actual Result:
Text elements have contrast ratios below 4.5:1, failing to meet WCAG AA standards for normal text.

Expected Result:
All text should have a contrast ratio of at least 4.5:1 for normal text and 3:1 for large text to meet WCAG AA standards.

MAS Reference:
MAS 1.4.3 – Contrast (Minimum)

Please refer to attached video in attachment tab for more information about the bug.`,
		},
		{
			ID:        "6",
			IssueType: "form_labels",
			WCAG:      "3.3.2",
			OneLiner:  "Form inputs lack proper labels",
			Patterns:  patterns(`{"user_impact_keywords":["screen reader","form inputs","labels"],"test_environment_template":"OS: Windows 11, Browser: Chrome, Screen Reader: NVDA"}`),
			FullReport: `User Impact:
Screen reader users will be impacted as form inputs lack proper labels, making it difficult to understand what information is required.

Test Environment:
OS: Windows 11 Version 22H2 (OS Build 22621.1413)
Browser: Chrome Version 120.0.6099.109 (Official build) (64-bit)
Screen Reader: NVDA 2023.3

Pre-requisite:
1. Enable screen reader form navigation
2. Set browser zoom to 100%

Steps to Reproduce:
1. Open the application URL in Chrome browser
2. Navigate to form elements using screen reader
3. Check if form inputs have associated labels
4. Verify label-input relationships

Actual Result:
Form inputs lack proper labels or have unassociated labels, making them inaccessible to screen reader users.

Expected Result:
All form inputs should have proper labels that are programmatically associated with their respective input elements.

MAS Reference:
MAS 3.3.2 – Labels or Instructions

Please refer to attached video in attachment tab for more information about the bug.`,
		},
	}
}

func patterns(raw string) json.RawMessage {
	return json.RawMessage(raw)
}
