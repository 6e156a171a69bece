package site

// skeletonHTML is the default page skeleton. It declares every element id
// and selector the section loaders and the interaction controller target;
// the placeholder text is replaced at build time.
const skeletonHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="description" content="">
  <meta name="author" content="">
  <meta name="keywords" content="">
  <title>Portfolio</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css">
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <nav class="navbar" id="navbar">
    <div class="nav-container">
      <div class="nav-brand"><a href="#home">Portfolio</a></div>
      <button class="nav-toggle" id="navToggle" aria-label="Toggle navigation">
        <span></span><span></span><span></span>
      </button>
      <ul class="nav-menu" id="navMenu">
        <li><a href="#about" class="nav-link">About</a></li>
        <li><a href="#contact" class="nav-link">Contact</a></li>
      </ul>
    </div>
  </nav>

  <section class="hero" id="home">
    <div class="container hero-content">
      <p class="hero-greeting" id="heroGreeting"></p>
      <h1 class="hero-name" id="heroName"></h1>
      <h2 class="hero-title" id="heroTitle"></h2>
      <p class="hero-summary" id="heroSummary"></p>
      <div class="hero-highlights" id="heroHighlights"></div>
      <div class="hero-cta" id="heroCTA"></div>
      <div class="hero-social" id="heroSocial"></div>
    </div>
  </section>

  <section class="section" id="about">
    <div class="container">
      <h2 class="section-title">About</h2>
      <div class="about-content">
        <div class="about-text" id="aboutText"></div>
        <div class="about-stats" id="aboutStats"></div>
      </div>
    </div>
  </section>

  <section class="section section-alt" id="experience">
    <div class="container">
      <h2 class="section-title">Experience</h2>
      <div class="timeline" id="experienceTimeline"></div>
    </div>
  </section>

  <section class="section" id="skills">
    <div class="container">
      <h2 class="section-title">Skills</h2>
      <div class="skills-grid" id="skillsGrid"></div>
    </div>
  </section>

  <section class="section section-alt" id="projects">
    <div class="container">
      <h2 class="section-title">Projects</h2>
      <div class="projects-grid" id="projectsGrid"></div>
    </div>
  </section>

  <section class="section" id="education">
    <div class="container">
      <h2 class="section-title">Education</h2>
      <div class="education-grid" id="educationGrid"></div>
      <div class="certifications">
        <h3>Certifications</h3>
        <div class="cert-grid" id="certGrid"></div>
      </div>
    </div>
  </section>

  <section class="section section-alt" id="contact">
    <div class="container">
      <h2 class="section-title">Contact</h2>
      <div class="contact-content">
        <div class="contact-info" id="contactInfo"></div>
        <div id="contactFormContainer"></div>
      </div>
    </div>
  </section>

  <footer class="footer">
    <div class="container footer-content">
      <p id="footerCopyright"></p>
      <div class="footer-links" id="footerLinks"></div>
    </div>
  </footer>

  <script src="script.js"></script>
</body>
</html>
`

const cssContent = `/* ============ Variables ============ */
:root {
  --primary-color: #2563eb;
  --primary-dark: #1d4ed8;
  --secondary-color: #64748b;
  --text-color: #1e293b;
  --text-light: #64748b;
  --bg-color: #ffffff;
  --bg-alt: #f8fafc;
  --border-color: #e2e8f0;
  --radius: 0.5rem;
  --shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
  --max-width: 1100px;
}

* { margin: 0; padding: 0; box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text-color);
  background: var(--bg-color);
  line-height: 1.6;
}

a { color: var(--primary-color); text-decoration: none; }

.container { max-width: var(--max-width); margin: 0 auto; padding: 0 1.5rem; }

/* ============ Navbar ============ */
.navbar {
  position: fixed; top: 0; left: 0; right: 0; z-index: 100;
  background: var(--bg-color);
  box-shadow: 0 1px 2px 0 rgba(0, 0, 0, 0.05);
  transition: box-shadow 0.3s ease;
}
.nav-container {
  max-width: var(--max-width); margin: 0 auto; padding: 1rem 1.5rem;
  display: flex; align-items: center; justify-content: space-between;
}
.nav-brand a { font-weight: 700; font-size: 1.25rem; color: var(--text-color); }
.nav-menu { display: flex; gap: 1.5rem; list-style: none; }
.nav-link { color: var(--text-light); font-weight: 500; transition: color 0.2s ease; }
.nav-link:hover { color: var(--primary-color); }
.nav-toggle { display: none; background: none; border: none; cursor: pointer; }
.nav-toggle span { display: block; width: 24px; height: 2px; margin: 5px 0; background: var(--text-color); }

/* ============ Hero ============ */
.hero { min-height: 100vh; display: flex; align-items: center; padding-top: 5rem; }
.hero-greeting { color: var(--primary-color); font-weight: 600; }
.hero-name { font-size: 3rem; line-height: 1.2; }
.hero-title { font-size: 1.5rem; color: var(--text-light); font-weight: 500; margin-bottom: 1rem; }
.hero-summary { max-width: 640px; margin-bottom: 1.5rem; }
.hero-highlights { display: flex; flex-wrap: wrap; gap: 1rem; margin-bottom: 1.5rem; }
.highlight-item { display: flex; align-items: center; gap: 0.5rem; color: var(--text-light); }
.highlight-item i { color: var(--primary-color); }
.hero-cta { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
.hero-social { display: flex; gap: 1rem; font-size: 1.5rem; }
.hero-social a { color: var(--text-light); }
.hero-social a:hover { color: var(--primary-color); }

/* ============ Buttons ============ */
.btn {
  display: inline-flex; align-items: center; gap: 0.5rem;
  padding: 0.75rem 1.5rem; border-radius: var(--radius);
  font-weight: 600; border: 2px solid var(--primary-color); cursor: pointer;
}
.btn-primary { background: var(--primary-color); color: #fff; }
.btn-primary:hover { background: var(--primary-dark); }
.btn-secondary { background: transparent; color: var(--primary-color); }

/* ============ Sections ============ */
.section { padding: 5rem 0; }
.section-alt { background: var(--bg-alt); }
.section-title { font-size: 2rem; text-align: center; margin-bottom: 3rem; }

.about-content { display: grid; grid-template-columns: 2fr 1fr; gap: 3rem; }
.about-text p { margin-bottom: 1rem; }
.about-stats { display: grid; gap: 1rem; }
.stat-item { padding: 1.5rem; text-align: center; border-radius: var(--radius); background: var(--bg-alt); }
.stat-item h3 { font-size: 2rem; color: var(--primary-color); }

.timeline { max-width: 800px; margin: 0 auto; }
.timeline-item { border-left: 2px solid var(--primary-color); padding: 0 0 2rem 1.5rem; }
.timeline-header { display: flex; justify-content: space-between; gap: 1rem; }
.timeline-company { color: var(--primary-color); font-weight: 500; }
.timeline-period { color: var(--text-light); white-space: nowrap; }
.timeline-description ul { margin: 0.5rem 0 0 1.25rem; }

.skills-grid, .projects-grid, .education-grid, .cert-grid {
  display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1.5rem;
}
.skill-category, .project-card, .education-item, .cert-item {
  background: var(--bg-color); border: 1px solid var(--border-color);
  border-radius: var(--radius); box-shadow: var(--shadow);
}
.skill-category { padding: 1.5rem; }
.skill-category h3 i { color: var(--primary-color); }
.skill-list { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-top: 1rem; }
.skill-tag, .tech-badge {
  padding: 0.25rem 0.75rem; border-radius: 999px; font-size: 0.875rem;
  background: var(--bg-alt); border: 1px solid var(--border-color);
}

.project-card { overflow: hidden; }
.project-image {
  height: 160px; display: flex; align-items: center; justify-content: center;
  font-size: 3rem; color: #fff; background: var(--primary-color);
}
.project-content { padding: 1.5rem; }
.project-tech { display: flex; flex-wrap: wrap; gap: 0.5rem; margin: 1rem 0; }
.project-links { display: flex; gap: 1rem; }

.education-item, .cert-item { padding: 1.5rem; }
.education-header { display: flex; justify-content: space-between; gap: 1rem; }
.certifications { margin-top: 3rem; }
.certifications h3 { text-align: center; margin-bottom: 1.5rem; }

.contact-content { display: grid; grid-template-columns: 1fr 1fr; gap: 3rem; }
.contact-item { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
.contact-item i { font-size: 1.25rem; color: var(--primary-color); }
.form-group { margin-bottom: 1rem; }
.form-group input, .form-group textarea {
  width: 100%; padding: 0.75rem; font: inherit;
  border: 1px solid var(--border-color); border-radius: var(--radius);
}

/* ============ Footer ============ */
.footer { padding: 2rem 0; background: var(--text-color); color: #fff; }
.footer-content { display: flex; justify-content: space-between; align-items: center; }
.footer-links { display: flex; gap: 1rem; }
.footer-links a { color: #fff; opacity: 0.8; }

/* ============ Responsive ============ */
@media (max-width: 768px) {
  .nav-toggle { display: block; }
  .nav-menu {
    display: none; position: absolute; top: 100%; left: 0; right: 0;
    flex-direction: column; padding: 1rem 1.5rem; background: var(--bg-color);
  }
  .nav-menu.active { display: flex; }
  .hero-name { font-size: 2.25rem; }
  .about-content, .contact-content { grid-template-columns: 1fr; }
  .footer-content { flex-direction: column; gap: 1rem; }
}
`

// jsTemplate is the browser half of the interaction controller. It is
// executed with the controller's constants so both halves agree.
const jsTemplate = `(function() {
  "use strict";

  var REVEAL_SELECTOR = {{printf "%q" .RevealSelector}};

  var navbar = document.getElementById("navbar");
  var navToggle = document.getElementById("navToggle");
  var navMenu = document.getElementById("navMenu");
  var lastScroll = 0;

  // ===== Mobile menu =====
  if (navToggle && navMenu) {
    navToggle.addEventListener("click", function() {
      navMenu.classList.toggle({{printf "%q" .MenuOpenClass}});
    });
  }
  document.querySelectorAll(".nav-link").forEach(function(link) {
    link.addEventListener("click", function() {
      if (navMenu) navMenu.classList.remove({{printf "%q" .MenuOpenClass}});
    });
  });

  // ===== Smooth scroll =====
  document.querySelectorAll('a[href^="#"]').forEach(function(anchor) {
    anchor.addEventListener("click", function(e) {
      e.preventDefault();
      var id = this.getAttribute("href").slice(1);
      var target = id ? document.getElementById(id) : null;
      if (target) {
        window.scrollTo({ top: target.offsetTop - {{.HeaderOffset}}, behavior: "smooth" });
      }
    });
  });

  // ===== Scroll reveal =====
  function revealOnScroll() {
    document.querySelectorAll(REVEAL_SELECTOR).forEach(function(el) {
      if (el.getBoundingClientRect().top < window.innerHeight - {{.RevealMargin}}) {
        el.style.opacity = "1";
        el.style.transform = {{printf "%q" .ShownTransform}};
      }
    });
  }

  // ===== Navbar elevation and active link =====
  function onScroll() {
    var y = window.pageYOffset;
    if (navbar) {
      navbar.style.boxShadow = y > {{.ElevationThreshold}} ? {{printf "%q" .ShadowElevated}} : {{printf "%q" .ShadowResting}};
    }
    lastScroll = y;

    revealOnScroll();

    document.querySelectorAll("section[id]").forEach(function(section) {
      var top = section.offsetTop - {{.SectionOffset}};
      var link = document.querySelector('.nav-link[href="#' + section.id + '"]');
      if (!link) return;
      link.style.color = (y > top && y <= top + section.offsetHeight) ? {{printf "%q" .ActiveLinkColor}} : "";
    });
  }
  window.addEventListener("scroll", onScroll);

  // ===== Contact form =====
  var form = document.getElementById("contactForm");
  if (form) {
    form.addEventListener("submit", function(e) {
      e.preventDefault();
      alert(form.getAttribute("data-success-message") || "");
      form.reset();
    });
  }

  onScroll();
{{- if .LiveReload}}

  // ===== Live reload =====
  (function connect() {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var socket = new WebSocket(scheme + location.host + {{printf "%q" .LiveReload}});
    socket.onmessage = function() { location.reload(); };
    socket.onclose = function() { setTimeout(connect, 1000); };
  })();
{{- end}}
})();
`
