package standup

import "math/rand/v2"

// openingPhrases adds a little variety to the daily post. One is picked at
// random each morning.
var openingPhrases = []string{
	"Good morning, team! ☕",
	"Rise and shine, it's standup time! 🌞",
	"Another day, another standup! 🚀",
	"Morning crew! Time to sync up. 🔄",
	"Daily check-in, let's go! 🏁",
	"Top of the morning! Drop your updates below. 📝",
}

const standupPromptBody = "*Daily — status thread* 💥\n" +
	"*Please reply here before the 12:00 sync with:*\n" +
	"*Yesterday:* what shipped / merged\n" +
	"*Today (by EOD or days remaining):* what you'll complete / how many days left\n" +
	"*Blockers / Risks:* who/what is needed to unblock\n" +
	"*Status-only here; move discussion to subthreads*"

func standupPrompt() string {
	phrase := openingPhrases[rand.IntN(len(openingPhrases))]
	return phrase + "\n\n" + standupPromptBody
}
