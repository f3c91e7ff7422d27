package site

// pageTemplate is the Go html/template for the presentation page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Material+Symbols+Outlined">
</head>
<body data-live="{{if .Live}}true{{else}}false{{end}}">
  <header class="top-bar" id="top-bar">
    <div class="brand">
      <h1 id="deck-title">{{.Title}}</h1>
      {{with .Subtitle}}<p class="subtitle">{{.}}</p>{{end}}
    </div>
    <nav class="view-nav" id="view-nav">
      {{range .Views}}<button id="nav-{{.ID}}" class="view-btn{{if .Active}} active{{end}}" data-view="{{.ID}}">{{with .Icon}}<span class="material-symbols-outlined">{{.}}</span>{{end}}{{.Label}}</button>
      {{end}}
    </nav>
  </header>

  <main class="views" id="views">
  {{range .Views}}
    {{$view := .}}
    <section id="{{.ID}}-view" class="view-container{{if .Active}} active{{end}}">
      <div id="{{.ID}}-intro" class="view-intro reveal-on-scroll">
        <h2>{{.Heading}}</h2>
        {{with .Notes}}<div class="notes">{{.}}</div>{{end}}
      </div>

      {{range .Diagrams}}
      <div id="{{.ID}}-card" class="diagram-card reveal-on-scroll">
        {{range .Tables}}
        <div class="mode-bar" id="{{.Key}}-modes" role="group">
          {{range .Buttons}}<button id="{{.ID}}" class="{{.Class}}{{if .Active}} active{{end}}" data-mode-table="{{.Table}}" data-mode="{{.Name}}">{{.Label}}</button>
          {{end}}
        </div>
        {{end}}

        {{if eq .ID "pov"}}
        <div class="mode-bar" id="pov-filters" role="group">
          <button id="pov-filter-all" class="pov-filter-btn active" data-team="all">All roles</button>
          {{range $.Teams}}<button id="pov-filter-{{.}}" class="pov-filter-btn" data-team="{{.}}">{{.}}</button>
          {{end}}
        </div>
        {{end}}

        <div id="{{.ID}}-diagram" class="diagram-container">{{.SVG}}</div>

        {{if eq .ID "wow"}}
        <div id="wow-overlay" class="info-panel opacity-100">
          <h3 id="wow-overlay-title">{{.SlotTitle}}</h3>
          <p id="wow-overlay-desc">{{.SlotDesc}}</p>
        </div>
        {{else if eq .ID "pom"}}
        <div id="pom-info-overlay" class="info-panel floating opacity-0">
          <h3 id="pom-info-title"></h3>
          <p id="pom-info-desc"></p>
        </div>
        <div id="pom-behavior-overlay" class="info-panel floating behavior opacity-0">
          <svg class="mode-swatch" viewBox="0 0 200 24" aria-hidden="true"><rect id="pom-mode-bg" x="0" y="0" width="200" height="24" rx="8" fill="rgba(16, 185, 129, 0.20)"></rect></svg>
          <h3 id="pom-mode-label"></h3>
          <p id="pom-mode-desc"></p>
        </div>
        {{else if eq .ID "sta"}}
        <div id="sta-overlay" class="info-panel opacity-100">
          <h3 id="sta-overlay-title">{{.SlotTitle}}</h3>
          <div id="sta-overlay-desc"><p>{{.SlotDesc}}</p></div>
        </div>
        {{else if eq .ID "ctx"}}
        <div id="sta-context-detail" class="detail-panel opacity-0 translate-y-4">
          <button id="ctx-detail-close" class="detail-close" data-diagram="ctx" aria-label="Close">×</button>
          <div class="detail-head">
            <div id="ctx-detail-icon" class="detail-icon"></div>
            <div>
              <h3 id="ctx-detail-title"></h3>
              <p id="ctx-detail-subtitle" class="detail-subtitle"></p>
            </div>
          </div>
          <dl class="detail-meta">
            <dt>Team</dt><dd id="ctx-detail-team"></dd>
            <dt>Topology</dt><dd id="ctx-detail-topology"></dd>
          </dl>
          <div class="track-grid">
            <div class="track discovery"><h4>Discovery</h4><p id="ctx-detail-discovery"></p></div>
            <div class="track delivery"><h4>Delivery</h4><p id="ctx-detail-delivery"></p></div>
            <div class="track operations"><h4>Operations</h4><p id="ctx-detail-operations"></p></div>
          </div>
          <div class="loops"><h4>Loops</h4><p id="ctx-detail-loops"></p></div>
        </div>
        {{else if eq .ID "pov"}}
        <div id="pov-role-detail" class="detail-panel opacity-0 translate-y-4">
          <button id="pov-detail-close" class="detail-close" data-diagram="pov" aria-label="Close">×</button>
          <div class="detail-head">
            <div id="pov-detail-icon" class="detail-icon"></div>
            <div>
              <h3 id="pov-detail-title"></h3>
              <p id="pov-detail-subtitle" class="detail-subtitle"></p>
            </div>
          </div>
          <div class="track-grid">
            <div class="track discovery"><h4>Discovery</h4><div id="pov-detail-discovery"></div></div>
            <div class="track delivery"><h4>Delivery</h4><div id="pov-detail-delivery"></div></div>
            <div class="track operations"><h4>Operations</h4><div id="pov-detail-operations"></div></div>
          </div>
        </div>
        {{else if eq .ID "journey"}}
        <div id="journey-detail" class="detail-panel opacity-0 translate-y-4">
          <button id="journey-detail-close" class="detail-close" data-diagram="journey" aria-label="Close">×</button>
          <h3 id="journey-detail-title"></h3>
          <p id="journey-detail-subtitle" class="detail-subtitle"></p>
          <p id="journey-detail-desc"></p>
          <dl class="detail-meta">
            <dt>Contexts</dt><dd id="journey-detail-contexts"></dd>
            <dt>Signals</dt><dd id="journey-detail-signals"></dd>
          </dl>
        </div>
        {{end}}
      </div>
      {{end}}

      {{if .Stress}}
      <div id="{{.ID}}-stress" class="stress-section reveal-on-scroll">
        <h3>Context stress</h3>
        <div id="context-stress-grid" class="stress-grid">{{$.StressGrid}}</div>
      </div>
      {{end}}
    </section>
  {{end}}
  </main>

  <footer class="footer">{{if .Live}}Live session{{else}}Static export, run <code>ddodeck serve</code> for interaction{{end}}</footer>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>
`

const cssContent = `/* ============ Base ============ */
:root {
  --bg: #0f172a;
  --panel: #1e293b;
  --border: #334155;
  --text: #f8fafc;
  --muted: #94a3b8;
  --accent: #3b82f6;
  --radius: 14px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: "Inter", system-ui, -apple-system, sans-serif;
  line-height: 1.5;
}

code { font-family: "JetBrains Mono", monospace; font-size: 0.9em; }

/* ============ Utility states ============ */
.hidden { display: none !important; }
.opacity-0 { opacity: 0; pointer-events: none; }
.opacity-100 { opacity: 1; }
.translate-y-4 { transform: translateY(1rem); }
.translate-y-0 { transform: translateY(0); }

.overlay, .info-panel, .detail-panel {
  transition: opacity 0.3s ease, transform 0.3s ease;
}

/* ============ Header ============ */
.top-bar {
  position: sticky;
  top: 0;
  z-index: 10;
  display: flex;
  flex-wrap: wrap;
  align-items: center;
  justify-content: space-between;
  gap: 1rem;
  padding: 1rem 2rem;
  background: rgba(15, 23, 42, 0.92);
  border-bottom: 1px solid var(--border);
}

.brand h1 { margin: 0; font-size: 1.25rem; }
.subtitle { margin: 0; color: var(--muted); font-size: 0.85rem; }

.view-nav { display: flex; flex-wrap: wrap; gap: 0.5rem; }

.view-btn, .mode-bar button {
  display: inline-flex;
  align-items: center;
  gap: 0.35rem;
  padding: 0.45rem 0.9rem;
  border: 1px solid var(--border);
  border-radius: 999px;
  background: transparent;
  color: var(--muted);
  font: inherit;
  font-size: 0.85rem;
  cursor: pointer;
}

.view-btn:hover, .mode-bar button:hover { color: var(--text); }
.view-btn.active, .mode-bar button.active {
  background: var(--accent);
  border-color: var(--accent);
  color: #fff;
}

/* ============ Views ============ */
.views { max-width: 1100px; margin: 0 auto; padding: 2rem; }
.view-container { display: none; }
.view-container.active { display: block; }

.view-intro h2 { margin: 0 0 0.5rem; font-size: 1.75rem; }
.notes { color: var(--muted); }

.reveal-on-scroll { opacity: 0; transform: translateY(1.5rem); transition: opacity 0.6s ease, transform 0.6s ease; }
.reveal-on-scroll.revealed { opacity: 1; transform: none; }

/* ============ Diagrams ============ */
.diagram-card {
  position: relative;
  margin: 1.5rem 0;
  padding: 1.25rem;
  background: var(--panel);
  border: 1px solid var(--border);
  border-radius: var(--radius);
}

.mode-bar { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-bottom: 1rem; }
.diagram-container svg.diagram { width: 100%; height: auto; display: block; }

.diagram g[role="button"] { cursor: pointer; outline: none; }
.diagram g[role="button"]:focus-visible rect,
.diagram g[role="button"]:focus-visible circle { stroke: #fff; }

/* ============ Panels ============ */
.info-panel {
  margin-top: 1rem;
  padding: 1rem 1.25rem;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: rgba(30, 41, 59, 0.9);
}

.info-panel.floating { position: absolute; right: 1.5rem; bottom: 1.5rem; max-width: 360px; }
.info-panel h3 { margin: 0 0 0.25rem; font-size: 1rem; }
.info-panel p { margin: 0; color: var(--muted); font-size: 0.9rem; }
.mode-swatch { width: 100%; height: 12px; margin-bottom: 0.5rem; }
.sta-meta { font-size: 0.85rem; }

.detail-panel {
  position: relative;
  margin-top: 1.25rem;
  padding: 1.25rem 1.5rem;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  background: #111c33;
}

.detail-close {
  position: absolute;
  top: 0.75rem;
  right: 0.75rem;
  border: none;
  background: transparent;
  color: var(--muted);
  font-size: 1.4rem;
  cursor: pointer;
}

.detail-head { display: flex; gap: 1rem; align-items: center; }
.detail-head h3 { margin: 0; }
.detail-subtitle { margin: 0; color: var(--muted); font-size: 0.85rem; }
.detail-meta { display: grid; grid-template-columns: max-content 1fr; gap: 0.25rem 1rem; font-size: 0.85rem; }
.detail-meta dt { color: var(--muted); }

.track-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; margin-top: 1rem; }
.track h4 { margin: 0 0 0.4rem; font-size: 0.8rem; text-transform: uppercase; letter-spacing: 0.06em; }
.track.discovery h4 { color: #60a5fa; }
.track.delivery h4 { color: #34d399; }
.track.operations h4 { color: #f472b6; }
.track p, .loops p { margin: 0; font-size: 0.85rem; color: #cbd5e1; }

.activity-group h5 { margin: 0.5rem 0 0.25rem; font-size: 0.75rem; color: var(--muted); text-transform: uppercase; }
.activity-group ul { margin: 0; padding-left: 1rem; font-size: 0.8rem; }
.tool-chips { display: flex; flex-wrap: wrap; gap: 0.3rem; }
.tool-chip { padding: 0.1rem 0.5rem; border-radius: 999px; background: #334155; font-size: 0.75rem; }

.detail-icon { width: 3rem; height: 3rem; }
.icon-badge {
  display: flex;
  width: 3rem;
  height: 3rem;
  align-items: center;
  justify-content: center;
  border-radius: 0.75rem;
  font-size: 1.5rem;
}
.badge-blue { background: rgba(59, 130, 246, 0.2); color: #60a5fa; }
.badge-emerald { background: rgba(16, 185, 129, 0.2); color: #34d399; }
.badge-pink { background: rgba(236, 72, 153, 0.2); color: #f472b6; }
.badge-red { background: rgba(239, 68, 68, 0.2); color: #f87171; }
.badge-orange { background: rgba(249, 115, 22, 0.2); color: #fb923c; }
.badge-indigo { background: rgba(99, 102, 241, 0.2); color: #818cf8; }
.badge-green { background: rgba(34, 197, 94, 0.2); color: #4ade80; }
.badge-purple { background: rgba(168, 85, 247, 0.2); color: #c084fc; }
.badge-cyan { background: rgba(6, 182, 212, 0.2); color: #22d3ee; }
.badge-amber, .badge-sky, .badge-slate { background: rgba(100, 116, 139, 0.2); color: #cbd5e1; }

/* ============ Stress grid ============ */
.stress-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.stress-card { padding: 1rem; border: 1px solid var(--border); border-radius: var(--radius); background: var(--panel); }
.stress-head { display: flex; justify-content: space-between; gap: 0.5rem; }
.stress-name { font-weight: 600; font-size: 0.9rem; }
.stress-meta { color: var(--muted); font-size: 0.75rem; margin: 0.25rem 0 0.5rem; }
.stress-bar { height: 6px; border-radius: 999px; background: #334155; overflow: hidden; }
.stress-fill { height: 100%; }
.stress-score { font-size: 0.8rem; margin-top: 0.25rem; }
.stress-drivers { margin: 0.5rem 0 0; padding-left: 1rem; font-size: 0.75rem; color: #cbd5e1; }
.stress-chip { padding: 0.05rem 0.5rem; border-radius: 999px; font-size: 0.7rem; text-transform: uppercase; }
.chip-adaptive { background: rgba(16, 185, 129, 0.6); }
.chip-reinforced { background: rgba(59, 130, 246, 0.6); }
.chip-overloaded { background: rgba(234, 179, 8, 0.6); }
.chip-fragile { background: rgba(239, 68, 68, 0.6); }

/* ============ Journey accordion ============ */
.journey-accordion { margin-top: 1rem; }
.journey-accordion-item { border: 1px solid var(--border); border-radius: 10px; margin-bottom: 0.5rem; padding: 0.5rem 1rem; background: var(--panel); }
.journey-accordion-item summary { cursor: pointer; font-weight: 600; }
.accordion-sub { color: var(--muted); font-weight: 400; font-size: 0.85rem; }

@media (max-width: 767px) {
  #journey-card .diagram-container { display: none; }
  .track-grid { grid-template-columns: 1fr; }
  .info-panel.floating { position: static; max-width: none; }
  .views { padding: 1rem; }
}

.footer { text-align: center; color: var(--muted); font-size: 0.8rem; padding: 2rem; }
`

const jsContent = `(function() {
  'use strict';

  var live = document.body.getAttribute('data-live') === 'true';
  var reveals = function() { return document.querySelectorAll('.reveal-on-scroll'); };

  if (!live) {
    reveals().forEach(function(el) { el.classList.add('revealed'); });
    return;
  }

  var socket = null;
  var queue = [];

  function send(msg) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
    } else {
      queue.push(msg);
    }
  }

  function gesture(g) { send({ type: 'gesture', gesture: g }); }

  function viewport(type) {
    var tops = {};
    reveals().forEach(function(el) {
      if (el.id) tops[el.id] = el.getBoundingClientRect().top;
    });
    gesture({
      type: type,
      viewport: { width: window.innerWidth, height: window.innerHeight, tops: tops }
    });
  }

  function applyPatch(p) {
    if (p.op === 'scroll') {
      window.scrollTo({ top: 0, behavior: 'smooth' });
      return;
    }
    if (p.op === 'measure') {
      viewport('scroll');
      return;
    }
    var el = document.getElementById(p.id);
    if (!el) return;
    switch (p.op) {
      case 'class': el.setAttribute('class', p.value || ''); break;
      case 'text': el.textContent = p.value || ''; break;
      case 'attr': el.setAttribute(p.name, p.value || ''); break;
      case 'html': el.innerHTML = p.value || ''; break;
      case 'append': el.insertAdjacentHTML('beforeend', p.value || ''); break;
      case 'remove': el.remove(); break;
    }
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    socket = new WebSocket(proto + '//' + location.host + '/ws');
    socket.onopen = function() {
      queue.splice(0).forEach(send);
      viewport('resize');
    };
    socket.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === 'patches') {
        (msg.patches || []).forEach(applyPatch);
      } else if (msg.type === 'reload') {
        location.reload();
      } else if (msg.type === 'error') {
        console.warn('ddodeck:', msg.error);
      }
    };
    socket.onclose = function() {
      setTimeout(function() { location.reload(); }, 2000);
    };
  }

  function targetOf(ev) {
    var el = ev.target.closest ? ev.target.closest('[id]') : null;
    return el ? el.id : '';
  }

  document.addEventListener('click', function(ev) {
    var id = targetOf(ev);
    if (id) gesture({ type: 'click', target: id });
  });

  var lastHover = '';
  document.addEventListener('mouseover', function(ev) {
    var region = ev.target.closest ? ev.target.closest('.wow-track, .pom-track') : null;
    var id = region ? region.id : '';
    if (id && id !== lastHover) gesture({ type: 'hover', target: id });
    lastHover = id;
  });

  document.addEventListener('keydown', function(ev) {
    if (ev.key !== 'Enter' && ev.key !== ' ') return;
    var el = document.activeElement;
    if (!el || !el.id || !el.hasAttribute('tabindex')) return;
    ev.preventDefault();
    gesture({ type: 'key', key: ev.key, target: el.id });
  });

  var pending = false;
  function schedule(type) {
    if (pending) return;
    pending = true;
    requestAnimationFrame(function() {
      pending = false;
      viewport(type);
    });
  }
  window.addEventListener('scroll', function() { schedule('scroll'); }, { passive: true });
  window.addEventListener('resize', function() { schedule('resize'); });

  connect();
})();
`
