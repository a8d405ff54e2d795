package gallery

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/networkteam/designkit/interaction"
)

type pageEntry struct {
	name     string
	instance instance
}

type pageProps struct {
	PathPrefix   string
	Entries      []pageEntry
	Interactions []interaction.Interaction
}

func page(props pageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>designkit gallery</title>`+
			`<script src="https://cdn.tailwindcss.com"></script></head>`+
			`<body class="bg-neutral-100 font-sans" data-path-prefix="%s">`, templ.EscapeString(props.PathPrefix))
		_, _ = io.WriteString(w, `<main class="flex gap-8 p-8"><section class="flex flex-col gap-8 flex-1">`)

		for _, entry := range props.Entries {
			_, _ = fmt.Fprintf(w, `<article class="rounded-md bg-white p-4 shadow-sm"><header class="mb-3 flex items-baseline justify-between">`+
				`<h2 class="font-semibold">%s</h2><a class="text-xs text-neutral-500 underline" href="%s">Source</a></header>`+
				`<p class="mb-4 text-sm text-neutral-500">%s</p>`,
				templ.EscapeString(entry.instance.title),
				templ.EscapeString(props.PathPrefix+"/source/"+entry.name),
				templ.EscapeString(entry.instance.description),
			)
			if err := fragment(entry.name, entry.instance).Render(ctx, w); err != nil {
				return err
			}
			_, _ = io.WriteString(w, `</article>`)
		}

		_, _ = io.WriteString(w, `</section><aside class="w-96"><h2 class="mb-3 font-semibold">Interactions</h2>`)
		if err := interactionList(props.Interactions).Render(ctx, w); err != nil {
			return err
		}
		_, _ = io.WriteString(w, `</aside></main>`)
		_, _ = io.WriteString(w, galleryScript)
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// fragment wraps an instance so the gallery script can route events and swap
// the re-rendered markup.
func fragment(name string, inst instance) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = fmt.Fprintf(w, `<div id="instance-%s" data-instance="%s">`, templ.EscapeString(name), templ.EscapeString(name))
		if err := inst.render().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func interactionList(interactions []interaction.Interaction) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<ul id="interaction-list" class="flex flex-col gap-1 font-mono text-xs">`)
		for _, i := range interactions {
			if err := interactionListItem(i).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

func interactionListItem(i interaction.Interaction) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		option := lo.Ternary(i.OptionID != "", " option="+i.OptionID, "")
		_, err := fmt.Fprintf(w, `<li id="interaction-%s" class="rounded bg-white px-2 py-1" data-callback="%s">`+
			`<span class="text-neutral-400">%s</span> %s %s &rarr; <strong>%s</strong>%s</li>`,
			i.ID,
			templ.EscapeString(i.Callback),
			i.Time.Format(time.TimeOnly),
			templ.EscapeString(i.Component),
			templ.EscapeString(i.Event),
			templ.EscapeString(i.Callback),
			templ.EscapeString(option),
		)
		return err
	})
}

const galleryScript = `<script>
(function () {
  var prefix = document.body.dataset.pathPrefix || "";

  function send(instance, event, fields) {
    var body = new URLSearchParams(Object.assign({ component: instance.dataset.instance, event: event }, fields));
    return fetch(prefix + "/interact", { method: "POST", body: body }).then(function (res) {
      if (event === "click" && res.ok) {
        return res.text().then(function (html) { instance.outerHTML = html; });
      }
    });
  }

  document.addEventListener("click", function (e) {
    var instance = e.target.closest("[data-instance]");
    var button = e.target.closest("button");
    if (!instance || !button || button.disabled) return;
    var option = e.target.closest("[data-option-id]");
    send(instance, "click", { option: option ? option.dataset.optionId : "" });
  });

  ["focusin", "focusout"].forEach(function (type) {
    document.addEventListener(type, function (e) {
      if (!e.target.matches("[data-component=survey]")) return;
      var instance = e.target.closest("[data-instance]");
      send(instance, type === "focusin" ? "focus" : "blur", {
        target: e.target.id, related: e.relatedTarget ? e.relatedTarget.tagName : ""
      });
    });
  });

  ["mouseover", "mouseout"].forEach(function (type) {
    document.addEventListener(type, function (e) {
      var survey = e.target.closest("[data-component=survey]");
      if (!survey || (e.relatedTarget && survey.contains(e.relatedTarget))) return;
      send(survey.closest("[data-instance]"), type === "mouseover" ? "mouseenter" : "mouseleave", {
        x: e.clientX, y: e.clientY
      });
    });
  });

  var source = new EventSource(prefix + "/interactions-sse");
  source.addEventListener("interaction", function (e) {
    var list = document.getElementById("interaction-list");
    list.insertAdjacentHTML("afterbegin", e.data);
  });
})();
</script>`
