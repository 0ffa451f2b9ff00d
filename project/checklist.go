package project

// Entry is a file expected in the project, relative to the project root
type Entry struct {
	Path  string
	Label string
}

// Category groups related entries under a heading
type Category struct {
	Title   string
	Entries []Entry
}

// DefaultChecklist returns the files the Smart Player Android TV app needs
// before GitHub Actions can build the APK
func DefaultChecklist() []Category {
	return []Category{
		{
			Title: "Gradle Configuration Files",
			Entries: []Entry{
				{"settings.gradle.kts", "Gradle settings"},
				{"build.gradle.kts", "Root build config"},
				{"gradle.properties", "Gradle properties"},
				{"app/build.gradle.kts", "App build config"},
				{"gradle/wrapper/gradle-wrapper.properties", "Gradle wrapper"},
			},
		},
		{
			Title: "Android Manifest and Resources",
			Entries: []Entry{
				{"app/src/main/AndroidManifest.xml", "Android Manifest"},
				{"app/src/main/res/values/strings.xml", "Strings resources"},
				{"app/src/main/res/values/colors.xml", "Colors resources"},
				{"app/src/main/res/values/themes.xml", "Themes"},
			},
		},
		{
			Title: "Layout Files",
			Entries: []Entry{
				{"app/src/main/res/layout/activity_main.xml", "Main activity layout"},
				{"app/src/main/res/layout/activity_settings.xml", "Settings activity layout"},
				{"app/src/main/res/layout/custom_player_controls.xml", "Custom player controls"},
			},
		},
		{
			Title: "Kotlin Source Files",
			Entries: []Entry{
				{"app/src/main/java/com/smartplayer/tv/MainActivity.kt", "MainActivity"},
				{"app/src/main/java/com/smartplayer/tv/SettingsActivity.kt", "SettingsActivity"},
				{"app/src/main/java/com/smartplayer/tv/PlayerManager.kt", "PlayerManager"},
				{"app/src/main/java/com/smartplayer/tv/SkipMarkerManager.kt", "SkipMarkerManager"},
				{"app/src/main/java/com/smartplayer/tv/PreferencesHelper.kt", "PreferencesHelper"},
			},
		},
		{
			Title: "Drawable Resources",
			Entries: []Entry{
				{"app/src/main/res/drawable/button_selector.xml", "Button selector"},
				{"app/src/main/res/drawable/edit_text_background.xml", "EditText background"},
				{"app/src/main/res/drawable/spinner_background.xml", "Spinner background"},
				{"app/src/main/res/drawable/app_banner.xml", "App banner"},
			},
		},
		{
			Title: "CI/CD and Documentation",
			Entries: []Entry{
				{".github/workflows/build-apk.yml", "GitHub Actions workflow"},
				{"README.md", "README documentation"},
				{".gitignore", "Git ignore file"},
			},
		},
	}
}
