package styles

// Default returns the built-in style rule table. A fresh table is built on
// every call so no caller can mutate shared process-wide state.
func Default() RuleTable {
	return RuleTable{
		"Heading 1": {
			FontName: strp("Century Gothic"), FontSizePt: numb(14), Bold: boolp(true), Italic: boolp(false),
			Color: strp("#0052A3"), Alignment: strp("Left"), LineSpacing: numb(1.15),
			SpacingBeforePt: numb(12), SpacingAfterPt: numb(6), KeepWithNext: boolp(true),
			KeepLinesTogether: boolp(true), IndentLeftCm: numb(0), IndentHangingCm: numb(1),
			NumberingLevel: intp(1), NumberingPattern: strp("%1"), BasedOn: strp("Normal"),
			FollowingStyle: strp("Normal"),
		},
		"Heading 2": {
			FontName: strp("Century Gothic"), FontSizePt: numb(12), Bold: boolp(true), Italic: boolp(false),
			Color: strp("#0052A3"), Alignment: strp("Left"), LineSpacing: numb(1.15),
			SpacingBeforePt: numb(12), SpacingAfterPt: numb(6), KeepWithNext: boolp(true),
			KeepLinesTogether: boolp(true), IndentLeftCm: numb(0), IndentHangingCm: numb(1.02),
			NumberingLevel: intp(2), NumberingPattern: strp("%1.%2"), BasedOn: strp("Normal"),
			FollowingStyle: strp("Normal"),
		},
		"Heading 3": {
			FontName: strp("Century Gothic"), FontSizePt: numb(11), Bold: boolp(true), Italic: boolp(false),
			Color: strp("#0052A3"), Alignment: strp("Left"), LineSpacing: numb(1.15),
			SpacingBeforePt: numb(8), SpacingAfterPt: numb(6), KeepWithNext: boolp(true),
			KeepLinesTogether: boolp(true), IndentLeftCm: numb(0), IndentHangingCm: numb(1.27),
			NumberingLevel: intp(3), NumberingPattern: strp("%1.%2.%3"), BasedOn: strp("Normal"),
			FollowingStyle: strp("Normal"),
		},
		"Heading 4": {
			FontName: strp("Century Gothic"), FontSizePt: numb(9), Bold: boolp(false), Italic: boolp(false),
			Color: strp("RGB(1,95,95)"), Alignment: strp("Left"), LineSpacing: numb(1.5),
			SpacingBeforePt: numb(8), SpacingAfterPt: numb(6), KeepWithNext: boolp(true),
			KeepLinesTogether: boolp(true), IndentLeftCm: numb(0), IndentHangingCm: numb(1.52),
			NumberingLevel: intp(4), NumberingPattern: strp("%1.%2.%3.%4"), BasedOn: strp("Normal"),
			FollowingStyle: strp("Normal"),
		},
		"Normal": {
			FontName: strp("Century Gothic"), FontSizePt: numb(10), Bold: boolp(false), Italic: boolp(false),
			Color: strp("Text 1"), Alignment: strp("Left"), LineSpacing: numb(1.0),
			SpacingBeforePt: numb(0), SpacingAfterPt: numb(6), WidowOrphanControl: boolp(true),
			FollowingStyle: strp("Normal"),
		},
		"List Paragraph Bullet Points": {
			FontName: strp("Century Gothic"), FontSizePt: numb(10.5), Bold: boolp(false), Italic: boolp(false),
			Color: strp("Text 1"), Alignment: strp("Left"), LineSpacing: numb(1.0),
			SpacingBeforePt: numb(0), SpacingAfterPt: numb(0), IndentLeftCm: numb(1.27),
			SpacingSameParagraphs: boolp(false), BasedOn: strp("Normal"),
			FollowingStyle: strp("List Paragraph Bullet Points"),
		},
		"Normal Bullet": {
			FontName: strp("Century Gothic"), FontSizePt: numb(10), Bold: boolp(false), Italic: boolp(false),
			Color: strp("Text 1"), Alignment: strp("Left"), LineSpacing: numb(1.08),
			SpacingBeforePt: numb(8), SpacingAfterPt: numb(8), IndentHangingCm: numb(0.63),
			IndentLeftCm: numb(1.27), BulletLevel: intp(1), BulletAlignmentCm: numb(0.63),
			BasedOn: strp("List Paragraph Bullet Point"), FollowingStyle: strp("Normal Bullet"),
		},
	}
}
